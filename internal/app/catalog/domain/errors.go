package domain

import "errors"

// Service-level error taxonomy. The transport layer maps these to HTTP
// statuses; the service layer maps storage failures into them.
var (
	// ErrNotFound indicates a lookup, update, or delete targeted an
	// identifier absent from the store (product or referenced category).
	ErrNotFound = errors.New("resource not found")

	// ErrIntegrityViolation indicates a write was refused by a
	// store-enforced constraint, notably deleting a record still
	// referenced by dependent rows.
	ErrIntegrityViolation = errors.New("database integrity violation")
)

// Validation errors for Product and Category fields.
var (
	// ErrEmptyName indicates an attempt to create or update an entity with an empty name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong indicates the name exceeds the maximum length of 255 characters.
	ErrNameTooLong = errors.New("name exceeds maximum length of 255 characters")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNilPrice indicates a product was built without a price.
	ErrNilPrice = errors.New("price is required")
)
