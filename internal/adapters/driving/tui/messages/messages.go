// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewServices is the catalog browser and service picker.
	ViewServices
	// ViewBookings lists recorded bookings.
	ViewBookings
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewServices:
		return "services"
	case ViewBookings:
		return "bookings"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// CatalogLoaded carries the service catalog from the catalog service.
type CatalogLoaded struct {
	Services []domain.Service
	Err      error
}

// ServiceToggled signals a service was selected or deselected in the picker.
type ServiceToggled struct {
	Service  domain.Service
	Selected bool
}

// BookingCreated signals a booking attempt finished.
type BookingCreated struct {
	Booking *domain.Booking
	Err     error
}

// BookingsLoaded carries the list of bookings, most recent first.
type BookingsLoaded struct {
	Bookings []domain.Booking
	Err      error
}

// BookingCancelled signals a booking was cancelled.
type BookingCancelled struct {
	ID  string
	Err error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ToastExpired signals a toast notification should be dismissed.
// Seq guards against a stale tick dismissing a newer toast.
type ToastExpired struct {
	Seq int
}
