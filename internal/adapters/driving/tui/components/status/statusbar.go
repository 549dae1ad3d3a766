// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/keymap"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
)

// State represents the current view state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StatePicking State = "picking"
)

// Bar displays selection progress and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string

	serviceCount int
	pickedCount  int
	maxPicks     int
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or selection summary.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StatePicking:
		summary := fmt.Sprintf("%d services  %d/%d selected", s.serviceCount, s.pickedCount, s.maxPicks)
		if s.pickedCount >= s.maxPicks {
			return s.styles.Warning.Render(summary + "  (full)")
		}
		return s.styles.Normal.Render(summary)
	case StateReady:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StatePicking {
		bindings = s.keymap.PickerHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, fmt.Sprintf("[%s] %s", b.Help().Key, b.Help().Desc))
	}

	return s.styles.Help.Render(strings.Join(hints, "  "))
}

// SetState sets the display state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current display state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the status message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the status message.
func (s *Bar) Message() string {
	return s.message
}

// SetCounts sets the selection summary shown while picking.
func (s *Bar) SetCounts(serviceCount, pickedCount, maxPicks int) {
	s.serviceCount = serviceCount
	s.pickedCount = pickedCount
	s.maxPicks = maxPicks
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
