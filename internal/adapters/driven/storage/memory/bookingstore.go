package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
)

// Ensure BookingStore implements the interface.
var _ driven.BookingStore = (*BookingStore)(nil)

// BookingStore is an in-memory implementation of driven.BookingStore.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

// NewBookingStore creates a new in-memory booking store.
func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]domain.Booking),
	}
}

// Save stores or updates a booking.
func (s *BookingStore) Save(_ context.Context, booking domain.Booking) error {
	if err := booking.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = booking
	return nil
}

// Get retrieves a booking by ID.
func (s *BookingStore) Get(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &booking, nil
}

// Delete removes a booking.
func (s *BookingStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, id)
	return nil
}

// List returns all bookings, most recent first.
func (s *BookingStore) List(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		result = append(result, booking)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
