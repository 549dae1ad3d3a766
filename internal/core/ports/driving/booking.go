package driving

import (
	"context"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

// BookingService provides booking management to external actors.
type BookingService interface {
	// Create validates the selection and stores a new booking.
	// It rejects empty selections, duplicate or unknown service IDs,
	// and selections exceeding the configured maximum.
	Create(ctx context.Context, clientName string, serviceIDs []string) (*domain.Booking, error)

	// Get retrieves a booking by ID.
	Get(ctx context.Context, id string) (*domain.Booking, error)

	// List returns all bookings, most recent first.
	List(ctx context.Context) ([]domain.Booking, error)

	// Cancel removes a booking.
	Cancel(ctx context.Context, id string) error
}
