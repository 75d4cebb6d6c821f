package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkoval/catalog-service/internal/app/catalog/domain"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func writeError(c *gin.Context, status int, label, message string) {
	c.AbortWithStatusJSON(status, errorBody{
		Status:  status,
		Error:   label,
		Message: message,
		Path:    c.Request.URL.Path,
	})
}

// mapServiceError translates the service error taxonomy into an HTTP
// status: not-found resources are 404, integrity-blocked writes are 409,
// field validation failures are 422. Everything else is an internal error.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(c, http.StatusNotFound, "Resource not found", err.Error())
	case errors.Is(err, domain.ErrIntegrityViolation):
		writeError(c, http.StatusConflict, "Integrity violation", err.Error())
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNameTooLong),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNilPrice):
		writeError(c, http.StatusUnprocessableEntity, "Validation error", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
