package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/views/bookings"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/views/menu"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/views/services"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// servicesView is the catalog browser and booking flow.
	servicesView *services.View

	// bookingsView lists recorded bookings.
	bookingsView *bookings.View

	// settingsView is the settings configuration view.
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		servicesView: services.NewView(s, nil, ports.Catalog, ports.Booking, ports.Settings),
		bookingsView: bookings.NewView(s, nil, ports.Booking),
		settingsView: settings.NewView(s, nil, ports.Settings),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.servicesView.WithContext(ctx)
	a.bookingsView.WithContext(ctx)
	a.settingsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("boeka - Salon Bookings"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.servicesView.SetDimensions(msg.Width, msg.Height)
		a.bookingsView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Esc from help goes to menu
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}

		return a.forwardToActive(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewServices:
			a.servicesView.Reset()
			return a, a.servicesView.Init()
		case messages.ViewBookings:
			return a, a.bookingsView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.ToastExpired:
		// The expiry tick may land after the user has navigated away,
		// so every view gets the chance to dismiss its toast.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.servicesView, cmd = a.servicesView.Update(msg)
		cmds = append(cmds, cmd)
		a.bookingsView, cmd = a.bookingsView.Update(msg)
		cmds = append(cmds, cmd)
		a.settingsView, cmd = a.settingsView.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forwardToActive(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward everything else (loads, toggles, spinner ticks) to the
	// active view.
	return a.forwardToActive(msg)
}

// forwardToActive routes a message to the currently active view.
func (a *App) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewServices:
		a.servicesView, cmd = a.servicesView.Update(msg)
		a.err = a.servicesView.Err()
	case messages.ViewBookings:
		a.bookingsView, cmd = a.bookingsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view is static
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewServices:
		return a.servicesView.View()
	case messages.ViewBookings:
		return a.bookingsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Services:
  (type)      Filter the catalog
  enter       To list / client name / confirm booking
  space       Toggle service selection
  /           Back to filter
  esc         Back

Bookings:
  j/k, ↑/↓    Navigate bookings
  x           Cancel booking
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.servicesView.SetDimensions(width, height)
	a.bookingsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
