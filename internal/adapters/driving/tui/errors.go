package tui

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingBookingService is returned when the booking service is not provided.
var ErrMissingBookingService = errors.New("tui: booking service is required")

// ErrInvalidPorts is returned when no ports aggregate is provided.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
