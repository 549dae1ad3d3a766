package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoServices indicates a booking was requested without any services.
	ErrNoServices = errors.New("no services selected")

	// ErrTooManyServices indicates a booking exceeds the configured
	// maximum number of services per booking.
	ErrTooManyServices = errors.New("too many services selected")

	// ErrDuplicateService indicates the same service was selected twice
	// for one booking.
	ErrDuplicateService = errors.New("duplicate service selected")

	// ErrCatalogUnavailable indicates the catalog store is not configured.
	ErrCatalogUnavailable = errors.New("catalog store unavailable")
)
