package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
	"github.com/veldworks/boeka-cli/internal/logger"
)

// Ensure BookingService implements the interface.
var _ driving.BookingService = (*BookingService)(nil)

// BookingService manages bookings.
type BookingService struct {
	bookingStore driven.BookingStore
	catalogStore driven.CatalogStore
	settings     driving.SettingsService
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingStore driven.BookingStore,
	catalogStore driven.CatalogStore,
	settings driving.SettingsService,
) *BookingService {
	return &BookingService{
		bookingStore: bookingStore,
		catalogStore: catalogStore,
		settings:     settings,
	}
}

// Create validates the selection and stores a new booking.
//
// The interactive picker already refuses additions past the cap, but the
// cap is enforced here too so the non-interactive `book` command cannot
// bypass it.
func (s *BookingService) Create(
	ctx context.Context, clientName string, serviceIDs []string,
) (*domain.Booking, error) {
	if s.bookingStore == nil {
		return nil, domain.ErrNotFound
	}

	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(serviceIDs) == 0 {
		return nil, domain.ErrNoServices
	}

	if err := s.checkCap(len(serviceIDs)); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		if seen[id] {
			return nil, fmt.Errorf("service %s: %w", id, domain.ErrDuplicateService)
		}
		seen[id] = true

		if s.catalogStore == nil {
			return nil, domain.ErrCatalogUnavailable
		}
		if _, err := s.catalogStore.Get(ctx, id); err != nil {
			return nil, fmt.Errorf("service %s: %w", id, err)
		}
	}

	booking := domain.Booking{
		ID:         uuid.New().String(),
		ClientName: clientName,
		ServiceIDs: serviceIDs,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.bookingStore.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	logger.Info("Booking: created %s for %q (%d services)", booking.ID, clientName, len(serviceIDs))
	return &booking, nil
}

// Get retrieves a booking by ID.
func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	if s.bookingStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.bookingStore.Get(ctx, id)
}

// List returns all bookings, most recent first.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	if s.bookingStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.bookingStore.List(ctx)
}

// Cancel removes a booking.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	if s.bookingStore == nil {
		return domain.ErrNotFound
	}

	if _, err := s.bookingStore.Get(ctx, id); err != nil {
		return err
	}

	if err := s.bookingStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	logger.Info("Booking: cancelled %s", id)
	return nil
}

// checkCap rejects selections above the configured max services.
func (s *BookingService) checkCap(count int) error {
	max := domain.DefaultMaxServices
	if s.settings != nil {
		settings, err := s.settings.Get()
		if err == nil && settings != nil {
			max = settings.Booking.MaxServices
		}
	}
	if count > max {
		return fmt.Errorf("%d services (max %d): %w", count, max, domain.ErrTooManyServices)
	}
	return nil
}
