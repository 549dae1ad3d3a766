// Package overlay provides a loading overlay for the TUI.
//
// While active, the overlay replaces the view content with a spinner
// and a message, for example while the catalog loads.
package overlay

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
)

// Overlay shows a spinner with a message while work is in progress.
type Overlay struct {
	styles  *styles.Styles
	spinner spinner.Model
	message string
	active  bool
}

// New creates an overlay component.
func New(s *styles.Styles) *Overlay {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &Overlay{
		styles:  s,
		spinner: sp,
		message: "Loading...",
	}
}

// Start activates the overlay with the given message and returns the
// command that drives the spinner.
func (o *Overlay) Start(message string) tea.Cmd {
	o.message = message
	o.active = true
	return o.spinner.Tick
}

// Stop hides the overlay.
func (o *Overlay) Stop() {
	o.active = false
}

// Update advances the spinner while the overlay is active.
func (o *Overlay) Update(msg tea.Msg) (*Overlay, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && o.active {
		var cmd tea.Cmd
		o.spinner, cmd = o.spinner.Update(msg)
		return o, cmd
	}
	return o, nil
}

// View renders the spinner and message, or an empty string when idle.
func (o *Overlay) View() string {
	if !o.active {
		return ""
	}
	return o.spinner.View() + " " + o.styles.Muted.Render(o.message)
}

// Active returns whether the overlay is showing.
func (o *Overlay) Active() bool {
	return o.active
}

// Message returns the overlay message.
func (o *Overlay) Message() string {
	return o.message
}
