package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/core/domain"
)

type mockBookingService struct {
	bookings  []domain.Booking
	listErr   error
	cancelErr error
	cancelled []string
}

func (m *mockBookingService) Create(context.Context, string, []string) (*domain.Booking, error) {
	return nil, errors.New("not implemented")
}

func (m *mockBookingService) Get(context.Context, string) (*domain.Booking, error) {
	return nil, domain.ErrNotFound
}

func (m *mockBookingService) List(context.Context) ([]domain.Booking, error) {
	return m.bookings, m.listErr
}

func (m *mockBookingService) Cancel(_ context.Context, id string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelled = append(m.cancelled, id)
	return nil
}

func fixtureBookings() []domain.Booking {
	return []domain.Booking{
		{ID: "b-2", ClientName: "Thandi", ServiceIDs: []string{"haircut"}, CreatedAt: time.Now()},
		{ID: "b-1", ClientName: "Lena", ServiceIDs: []string{"haircut", "beard-trim"}, CreatedAt: time.Now().Add(-time.Hour)},
	}
}

func loadedView(t *testing.T) (*View, *mockBookingService) {
	t.Helper()

	svc := &mockBookingService{bookings: fixtureBookings()}
	view := NewView(nil, nil, svc)
	view.SetDimensions(80, 24)
	view.Update(messages.BookingsLoaded{Bookings: fixtureBookings()})
	return view, svc
}

func TestView_LoadsBookings(t *testing.T) {
	view, _ := loadedView(t)

	require.Len(t, view.Bookings(), 2)
	assert.Equal(t, "Thandi", view.Bookings()[0].ClientName)
}

func TestView_View_ShowsClients(t *testing.T) {
	view, _ := loadedView(t)

	out := view.View()

	assert.Contains(t, out, "Thandi")
	assert.Contains(t, out, "Lena")
	assert.Contains(t, out, "(2 services)")
}

func TestView_View_EmptyState(t *testing.T) {
	view := NewView(nil, nil, &mockBookingService{})
	view.SetDimensions(80, 24)
	view.Update(messages.BookingsLoaded{})

	assert.Contains(t, view.View(), "No bookings yet")
}

func TestView_Navigation(t *testing.T) {
	view, _ := loadedView(t)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	// Boundary at the bottom
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, view.Selected())
}

func TestView_CancelSelectedBooking(t *testing.T) {
	view, svc := loadedView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.NotNil(t, cmd)

	msg := cmd()
	cancelled, ok := msg.(messages.BookingCancelled)
	require.True(t, ok)
	assert.NoError(t, cancelled.Err)
	assert.Equal(t, "b-2", cancelled.ID)
	assert.Equal(t, []string{"b-2"}, svc.cancelled)
}

func TestView_CancelledBookingShowsToastAndReloads(t *testing.T) {
	view, _ := loadedView(t)

	_, cmd := view.Update(messages.BookingCancelled{ID: "b-2"})

	require.NotNil(t, cmd)
	assert.Contains(t, view.View(), "Booking cancelled")
}

func TestView_CancelFailureShowsError(t *testing.T) {
	view, _ := loadedView(t)

	_, cmd := view.Update(messages.BookingCancelled{ID: "b-2", Err: errors.New("nope")})

	require.NotNil(t, cmd)
	assert.Contains(t, view.View(), "Cancel failed: nope")
}

func TestView_EscGoesToMenu(t *testing.T) {
	view, _ := loadedView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestView_LoadError(t *testing.T) {
	view, _ := loadedView(t)

	view.Update(messages.BookingsLoaded{Err: errors.New("db locked")})

	assert.Error(t, view.Err())
	assert.Contains(t, view.View(), "db locked")
}
