// Package bookings provides the bookings list view for the TUI.
package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/overlay"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/toast"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/keymap"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
)

// View lists recorded bookings, most recent first.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	loading *overlay.Overlay
	notice  *toast.Toast

	bookingService driving.BookingService
	ctx            context.Context

	bookings []domain.Booking
	selected int
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates the bookings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, bookingService driving.BookingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		loading:        overlay.New(s),
		notice:         toast.New(s),
		bookingService: bookingService,
		ctx:            context.Background(),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the bookings.
func (v *View) Init() tea.Cmd {
	return tea.Batch(
		v.loading.Start("Loading bookings..."),
		v.loadBookings(),
	)
}

// Update handles messages for the bookings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BookingsLoaded:
		v.loading.Stop()
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.bookings = msg.Bookings
		if v.selected >= len(v.bookings) {
			v.selected = len(v.bookings) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil

	case messages.BookingCancelled:
		if msg.Err != nil {
			return v, v.notice.Show("Cancel failed: "+msg.Err.Error(), toast.LevelError)
		}
		return v, tea.Batch(
			v.notice.Show("Booking cancelled", toast.LevelSuccess),
			v.loadBookings(),
		)

	case messages.ToastExpired:
		v.notice, _ = v.notice.Update(msg)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.loading, cmd = v.loading.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(msg.String(), v.keymap.Down):
		if v.selected < len(v.bookings)-1 {
			v.selected++
		}
	case keymap.Matches(msg.String(), v.keymap.Remove):
		if booking := v.SelectedBooking(); booking != nil {
			return v, v.cancelBooking(booking.ID)
		}
	}

	return v, nil
}

// loadBookings fetches bookings from the service.
func (v *View) loadBookings() tea.Cmd {
	return func() tea.Msg {
		if v.bookingService == nil {
			return messages.BookingsLoaded{}
		}
		bookings, err := v.bookingService.List(v.ctx)
		return messages.BookingsLoaded{Bookings: bookings, Err: err}
	}
}

// cancelBooking removes a booking.
func (v *View) cancelBooking(id string) tea.Cmd {
	return func() tea.Msg {
		err := v.bookingService.Cancel(v.ctx, id)
		return messages.BookingCancelled{ID: id, Err: err}
	}
}

// View renders the bookings list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 6)
	sections = append(sections, v.styles.Title.Render("Bookings"), "")

	if v.notice.Visible() {
		sections = append(sections, v.notice.View(), "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	switch {
	case v.loading.Active():
		sections = append(sections, v.loading.View())
	case len(v.bookings) == 0:
		sections = append(sections, v.styles.Muted.Render("No bookings yet"))
	default:
		sections = append(sections, v.renderList())
	}

	sections = append(sections, "", v.styles.Help.Render("[j/k] Navigate  [x] Cancel booking  [esc] Back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderList() string {
	lines := make([]string, 0, len(v.bookings))
	for i := range v.bookings {
		booking := &v.bookings[i]

		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s  %s  (%d services)",
			cursor,
			booking.CreatedAt.Format("2006-01-02 15:04"),
			booking.ClientName,
			len(booking.ServiceIDs))

		if i == v.selected {
			lines = append(lines, v.styles.Selected.Render(line))
		} else {
			lines = append(lines, v.styles.Normal.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Bookings returns the loaded bookings.
func (v *View) Bookings() []domain.Booking {
	return v.bookings
}

// Selected returns the cursor position.
func (v *View) Selected() int {
	return v.selected
}

// SelectedBooking returns the booking under the cursor, or nil.
func (v *View) SelectedBooking() *domain.Booking {
	if len(v.bookings) == 0 || v.selected < 0 || v.selected >= len(v.bookings) {
		return nil
	}
	return &v.bookings[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
