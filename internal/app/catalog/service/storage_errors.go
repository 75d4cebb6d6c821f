package service

import (
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

// translateStorageErr maps a storage commit failure into the service error
// taxonomy. A NotFound status means a mutation targeted an absent row; a
// FailedPrecondition (or AlreadyExists) status means a store-enforced
// constraint refused the write. Anything else is an unexpected storage
// failure and propagates unmodified.
func translateStorageErr(err error) error {
	if err == nil {
		return nil
	}

	switch spanner.ErrCode(err) {
	case codes.NotFound:
		return fmt.Errorf("%v: %w", err, domain.ErrNotFound)
	case codes.FailedPrecondition, codes.AlreadyExists:
		return fmt.Errorf("%v: %w", err, domain.ErrIntegrityViolation)
	}
	return err
}
