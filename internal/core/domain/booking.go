package domain

import (
	"strings"
	"time"
)

// Booking represents a client appointment for one or more services.
type Booking struct {
	// ID is the unique identifier for the booking.
	ID string

	// ClientName is the name the booking was made under.
	ClientName string

	// ServiceIDs are the catalog services included in the booking,
	// in the order they were selected.
	ServiceIDs []string

	// CreatedAt is when the booking was created.
	CreatedAt time.Time
}

// Validate checks that the booking has the required fields.
func (b Booking) Validate() error {
	if b.ID == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(b.ClientName) == "" {
		return ErrInvalidInput
	}
	if len(b.ServiceIDs) == 0 {
		return ErrNoServices
	}
	return nil
}

// HasService reports whether the booking includes the given service.
func (b Booking) HasService(serviceID string) bool {
	for _, id := range b.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
