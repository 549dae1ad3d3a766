// Package services provides the catalog browsing and booking view.
//
// The view has three modes: typing in the filter input, navigating the
// picker, and entering a client name to confirm a booking. The filter
// is applied live on every keystroke. The view owns the selection map
// and hands it to the picker, which mutates it on toggle.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/input"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/overlay"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/picker"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/status"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/toast"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/keymap"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
	"github.com/veldworks/boeka-cli/internal/currency"
)

// Mode identifies which part of the view has focus.
type Mode int

const (
	// ModeFilter means keystrokes edit the filter query.
	ModeFilter Mode = iota
	// ModePick means keystrokes navigate and toggle the picker.
	ModePick
	// ModeClient means keystrokes edit the client name.
	ModeClient
)

// View is the catalog browser and booking flow.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	filter  *input.TextInput
	client  *input.TextInput
	picker  *picker.Picker
	bar     *status.Bar
	loading *overlay.Overlay
	notice  *toast.Toast

	catalogService  driving.CatalogService
	bookingService  driving.BookingService
	settingsService driving.SettingsService
	ctx             context.Context

	// selection is owned here and shared with the picker.
	selection map[string]bool

	mode   Mode
	width  int
	height int
	ready  bool
	err    error
}

// NewView creates the services view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalogService driving.CatalogService,
	bookingService driving.BookingService,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	selection := make(map[string]bool)
	p := picker.New(s)
	p.SetSelection(selection)

	client := input.New(s, "Client", "Client name...")
	client.Blur()

	return &View{
		styles:          s,
		keymap:          km,
		filter:          input.New(s, "Filter", "Type to filter services..."),
		client:          client,
		picker:          p,
		bar:             status.NewBar(s, km),
		loading:         overlay.New(s),
		notice:          toast.New(s),
		catalogService:  catalogService,
		bookingService:  bookingService,
		settingsService: settingsService,
		ctx:             context.Background(),
		selection:       selection,
		mode:            ModeFilter,
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the catalog and settings.
func (v *View) Init() tea.Cmd {
	return tea.Batch(
		v.filter.Init(),
		v.loading.Start("Loading catalog..."),
		v.loadCatalog(),
		v.loadSettings(),
	)
}

// Reset clears the filter, selection and mode for a fresh visit.
func (v *View) Reset() {
	v.selection = make(map[string]bool)
	v.picker.SetSelection(v.selection)
	v.picker.SetFilter("")
	v.picker.SetDisabled(false)
	v.filter.Reset()
	v.filter.Focus()
	v.client.Reset()
	v.client.Blur()
	v.notice.Hide()
	v.mode = ModeFilter
	v.err = nil
}

// Update handles messages for the services view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CatalogLoaded:
		v.handleCatalogLoaded(msg)
		return v, nil

	case messages.SettingsLoaded:
		v.handleSettingsLoaded(msg)
		return v, nil

	case messages.ServiceToggled:
		v.refreshCounts()
		return v, nil

	case messages.BookingCreated:
		return v, v.handleBookingCreated(msg)

	case messages.ToastExpired:
		v.notice, _ = v.notice.Update(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.loading, cmd = v.loading.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleKeyMsg routes keys to the focused component.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.mode {
	case ModeFilter:
		return v.handleFilterKey(msg)
	case ModePick:
		return v.handlePickKey(msg)
	case ModeClient:
		return v.handleClientKey(msg)
	}
	return v, nil
}

func (v *View) handleFilterKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, navigateTo(messages.ViewMenu)
	case tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		v.mode = ModePick
		v.filter.Blur()
		return v, nil
	default:
	}

	var cmd tea.Cmd
	v.filter, cmd = v.filter.Update(msg)
	v.picker.SetFilter(v.filter.Value())
	v.refreshCounts()
	return v, cmd
}

func (v *View) handlePickKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, navigateTo(messages.ViewMenu)
	}

	if msg.Type == tea.KeyEnter {
		if len(v.selection) == 0 {
			v.bar.SetState(status.StateReady)
			v.bar.SetMessage("Select at least one service")
			return v, nil
		}
		v.mode = ModeClient
		v.picker.SetDisabled(true)
		return v, v.client.Focus()
	}

	if keymap.Matches(msg.String(), v.keymap.Filter) {
		v.mode = ModeFilter
		return v, v.filter.Focus()
	}

	var cmd tea.Cmd
	v.picker, cmd = v.picker.Update(msg)
	return v, cmd
}

func (v *View) handleClientKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.mode = ModePick
		v.picker.SetDisabled(false)
		v.client.Blur()
		return v, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(v.client.Value())
		if name == "" {
			v.bar.SetState(status.StateReady)
			v.bar.SetMessage("Client name is required")
			return v, nil
		}
		return v, tea.Batch(v.loading.Start("Saving booking..."), v.createBooking(name))
	default:
	}

	var cmd tea.Cmd
	v.client, cmd = v.client.Update(msg)
	return v, cmd
}

// loadCatalog fetches the catalog from the service.
func (v *View) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		if v.catalogService == nil {
			return messages.CatalogLoaded{Err: domain.ErrCatalogUnavailable}
		}
		services, err := v.catalogService.List(v.ctx)
		return messages.CatalogLoaded{Services: services, Err: err}
	}
}

// loadSettings fetches settings for the cap and currency symbol.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Settings: domain.DefaultAppSettings()}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (v *View) handleCatalogLoaded(msg messages.CatalogLoaded) {
	v.loading.Stop()

	if msg.Err != nil {
		v.err = msg.Err
		v.picker.SetDisabled(true)
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.picker.SetServices(msg.Services)
	v.picker.SetDisabled(false)
	v.refreshCounts()
}

func (v *View) handleSettingsLoaded(msg messages.SettingsLoaded) {
	if msg.Err != nil || msg.Settings == nil {
		return
	}
	v.picker.SetMaxSelections(msg.Settings.Booking.MaxServices)
	v.picker.SetFormatter(currency.NewFormatter(msg.Settings.Currency.Symbol))
	v.refreshCounts()
}

// createBooking snapshots the selection in catalog order and records it.
func (v *View) createBooking(clientName string) tea.Cmd {
	serviceIDs := v.SelectedIDs()
	return func() tea.Msg {
		if v.bookingService == nil {
			return messages.BookingCreated{Err: errors.New("booking service not configured")}
		}
		booking, err := v.bookingService.Create(v.ctx, clientName, serviceIDs)
		return messages.BookingCreated{Booking: booking, Err: err}
	}
}

func (v *View) handleBookingCreated(msg messages.BookingCreated) tea.Cmd {
	v.loading.Stop()
	v.mode = ModePick
	v.picker.SetDisabled(false)
	v.client.Blur()

	if msg.Err != nil {
		return v.notice.Show("Booking failed: "+msg.Err.Error(), toast.LevelError)
	}

	// Fresh selection for the next booking.
	v.selection = make(map[string]bool)
	v.picker.SetSelection(v.selection)
	v.client.Reset()
	v.refreshCounts()

	return v.notice.Show(
		fmt.Sprintf("Booked %s (%d services)", msg.Booking.ClientName, len(msg.Booking.ServiceIDs)),
		toast.LevelSuccess,
	)
}

// refreshCounts syncs the status bar with the picker state.
func (v *View) refreshCounts() {
	v.bar.SetState(status.StatePicking)
	v.bar.SetMessage("")
	v.bar.SetCounts(v.picker.Count(), len(v.selection), v.picker.MaxSelections())
}

func navigateTo(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the services view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("Services"), "")
	sections = append(sections, v.filter.View(), "")

	if v.notice.Visible() {
		sections = append(sections, v.notice.View(), "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.loading.Active() {
		sections = append(sections, v.loading.View())
	} else {
		sections = append(sections, v.picker.View())
	}

	if v.mode == ModeClient {
		sections = append(sections, "", v.client.View())
	}

	sections = append(sections, "", v.bar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.filter.SetWidth(width)
	v.client.SetWidth(width)
	v.bar.SetWidth(width)
	// Reserve rows for title, filter, status bar and padding.
	listHeight := height - 8
	if listHeight < 3 {
		listHeight = 3
	}
	v.picker.SetDimensions(width, listHeight)
}

// Mode returns the current focus mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Picker exposes the picker component.
func (v *View) Picker() *picker.Picker {
	return v.picker
}

// Selection returns the current selection map.
func (v *View) Selection() map[string]bool {
	return v.selection
}

// SelectedIDs returns the selected service IDs in catalog order.
func (v *View) SelectedIDs() []string {
	ids := make([]string, 0, len(v.selection))
	for _, service := range v.picker.Services() {
		if v.selection[service.ID] {
			ids = append(ids, service.ID)
		}
	}
	return ids
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
