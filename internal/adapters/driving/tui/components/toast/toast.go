// Package toast provides transient notifications for the TUI.
//
// A toast shows a short message and dismisses itself after a fixed
// interval. Each Show bumps a sequence number so a tick scheduled for
// an older toast cannot dismiss a newer one.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
)

// Level controls the toast styling.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// Toast is a self-dismissing notification.
type Toast struct {
	styles   *styles.Styles
	message  string
	level    Level
	seq      int
	visible  bool
	duration time.Duration
}

// New creates a toast component.
func New(s *styles.Styles) *Toast {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Toast{
		styles:   s,
		duration: DefaultDuration,
	}
}

// Show displays a message and returns the command that schedules its
// dismissal.
func (t *Toast) Show(message string, level Level) tea.Cmd {
	t.message = message
	t.level = level
	t.visible = true
	t.seq++

	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return messages.ToastExpired{Seq: seq}
	})
}

// Update dismisses the toast when its own expiry tick arrives.
func (t *Toast) Update(msg tea.Msg) (*Toast, tea.Cmd) {
	if expired, ok := msg.(messages.ToastExpired); ok {
		if expired.Seq == t.seq {
			t.visible = false
		}
	}
	return t, nil
}

// View renders the toast, or an empty string when hidden.
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}

	switch t.level {
	case LevelSuccess:
		return t.styles.Success.Render(t.message)
	case LevelWarn:
		return t.styles.Warning.Render(t.message)
	case LevelError:
		return t.styles.Error.Render(t.message)
	case LevelInfo:
		return t.styles.Toast.Render(t.message)
	}
	return t.styles.Toast.Render(t.message)
}

// Hide dismisses the toast immediately, without waiting for its
// expiry tick.
func (t *Toast) Hide() {
	t.visible = false
}

// Visible returns whether the toast is showing.
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the current toast message.
func (t *Toast) Message() string {
	return t.message
}

// SetDuration overrides the dismissal interval. Useful for testing.
func (t *Toast) SetDuration(d time.Duration) {
	t.duration = d
}
