// Package tui provides an interactive terminal user interface for Boeka.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides the service catalog.
	Catalog driving.CatalogService

	// Booking manages bookings.
	Booking driving.BookingService

	// Settings manages application settings. Optional: when nil the
	// TUI falls back to default settings and hides the settings view.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	booking driving.BookingService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Catalog:  catalog,
		Booking:  booking,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Booking == nil {
		return ErrMissingBookingService
	}
	return nil
}
