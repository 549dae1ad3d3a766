package driven

import (
	"context"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// BookingStore persists bookings.
type BookingStore interface {
	// Save stores or updates a booking.
	Save(ctx context.Context, booking domain.Booking) error

	// Get retrieves a booking by ID.
	Get(ctx context.Context, id string) (*domain.Booking, error)

	// Delete removes a booking.
	Delete(ctx context.Context, id string) error

	// List returns all bookings, most recent first.
	List(ctx context.Context) ([]domain.Booking, error)
}
