// Package picker provides the service picker component for the TUI.
//
// The picker shows the catalog filtered by a query and lets the user
// toggle services in and out of a selection. The selection map is owned
// by the caller; the picker mutates it on toggle and reports the change
// as a message. Selection is capped: toggling a new service on while
// the cap is reached is dropped without feedback, while toggling a
// selected service off always works. A disabled picker ignores toggles
// entirely.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/currency"
)

// Picker displays a filterable service list with bounded selection.
type Picker struct {
	services []domain.Service
	filtered []domain.Service
	query    string

	selection map[string]bool
	maxPicks  int
	disabled  bool

	cursor    int
	styles    *styles.Styles
	formatter *currency.Formatter
	width     int
	height    int
}

// New creates a new picker component.
func New(s *styles.Styles) *Picker {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Picker{
		selection: make(map[string]bool),
		maxPicks:  domain.DefaultMaxServices,
		styles:    s,
		formatter: currency.NewFormatter(""),
		width:     80,
		height:    20,
	}
}

// Init initialises the picker.
func (p *Picker) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggle keys.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			p.MoveUp()
			return p, nil
		case tea.KeyDown:
			p.MoveDown()
			return p, nil
		case tea.KeySpace:
			return p, p.Toggle()
		default:
		}
		switch msg.String() {
		case "k":
			p.MoveUp()
		case "j":
			p.MoveDown()
		case " ":
			return p, p.Toggle()
		}
	}
	return p, nil
}

// Toggle flips the selection state of the service under the cursor and
// returns a command announcing the change. It returns nil when the
// picker is disabled, the list is empty, or adding would exceed the
// cap; the dropped add produces no message.
func (p *Picker) Toggle() tea.Cmd {
	if p.disabled {
		return nil
	}

	service := p.CurrentService()
	if service == nil {
		return nil
	}

	if p.selection[service.ID] {
		delete(p.selection, service.ID)
		return announceToggle(*service, false)
	}

	if p.maxPicks >= 0 && len(p.selection) >= p.maxPicks {
		return nil
	}

	p.selection[service.ID] = true
	return announceToggle(*service, true)
}

func announceToggle(service domain.Service, selected bool) tea.Cmd {
	return func() tea.Msg {
		return messages.ServiceToggled{Service: service, Selected: selected}
	}
}

// View renders the filtered list with selection marks and prices.
func (p *Picker) View() string {
	if len(p.filtered) == 0 {
		if strings.TrimSpace(p.query) != "" {
			return p.styles.Muted.Render(fmt.Sprintf("No services found for %q", p.query))
		}
		return p.styles.Muted.Render("Catalog is empty")
	}

	lines := make([]string, 0, len(p.filtered))

	visible := p.height
	if visible < 1 {
		visible = 1
	}

	start := 0
	if p.cursor >= visible {
		start = p.cursor - visible + 1
	}
	end := start + visible
	if end > len(p.filtered) {
		end = len(p.filtered)
	}

	for i := start; i < end; i++ {
		lines = append(lines, p.renderService(i, &p.filtered[i]))
	}

	return strings.Join(lines, "\n")
}

// renderService formats a single catalog entry.
func (p *Picker) renderService(index int, service *domain.Service) string {
	cursor := "  "
	if index == p.cursor {
		cursor = "> "
	}

	mark := "[ ]"
	if p.selection[service.ID] {
		mark = "[x]"
	}

	name := service.Name
	maxNameLen := p.width - 20
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	// Truncate by runes so multi-byte names stay valid UTF-8.
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen-3]) + "..."
	}

	price := ""
	if service.HasPrice() {
		price = "  " + p.formatter.Format(service.BasePriceCents)
	}

	var line string
	switch {
	case index == p.cursor:
		line = p.styles.Selected.Render(fmt.Sprintf("%s%s %s%s", cursor, mark, name, price))
	case p.selection[service.ID]:
		line = p.styles.Picked.Render(fmt.Sprintf("%s%s %s", cursor, mark, name)) +
			p.styles.Price.Render(price)
	default:
		line = p.styles.Normal.Render(fmt.Sprintf("%s%s %s", cursor, mark, name)) +
			p.styles.Price.Render(price)
	}

	if service.Description != "" && index == p.cursor {
		line += "\n" + p.styles.Muted.Render("      "+service.Description)
	}

	return line
}

// SetServices replaces the catalog and re-applies the current filter.
func (p *Picker) SetServices(services []domain.Service) {
	p.services = services
	p.applyFilter()
}

// Services returns the unfiltered catalog.
func (p *Picker) Services() []domain.Service {
	return p.services
}

// SetFilter updates the query and re-filters the list. Matching is a
// case-insensitive substring check over name and description.
func (p *Picker) SetFilter(query string) {
	p.query = query
	p.applyFilter()
}

// Filter returns the current query.
func (p *Picker) Filter() string {
	return p.query
}

func (p *Picker) applyFilter() {
	p.filtered = domain.FilterServices(p.services, p.query)
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Visible returns the services matching the current filter, in catalog order.
func (p *Picker) Visible() []domain.Service {
	return p.filtered
}

// SetSelection hands the picker a selection map to operate on.
// The map stays owned by the caller; toggles mutate it in place.
func (p *Picker) SetSelection(selection map[string]bool) {
	if selection == nil {
		selection = make(map[string]bool)
	}
	p.selection = selection
}

// Selection returns the selection map the picker operates on.
func (p *Picker) Selection() map[string]bool {
	return p.selection
}

// SelectedCount returns the number of selected services.
func (p *Picker) SelectedCount() int {
	return len(p.selection)
}

// SetMaxSelections sets the selection cap. Negative values restore the
// default; zero blocks all additions.
func (p *Picker) SetMaxSelections(max int) {
	if max < 0 {
		max = domain.DefaultMaxServices
	}
	p.maxPicks = max
}

// MaxSelections returns the selection cap.
func (p *Picker) MaxSelections() int {
	return p.maxPicks
}

// SetDisabled enables or disables toggling.
func (p *Picker) SetDisabled(disabled bool) {
	p.disabled = disabled
}

// Disabled returns whether toggling is disabled.
func (p *Picker) Disabled() bool {
	return p.disabled
}

// MoveUp moves the cursor up.
func (p *Picker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down.
func (p *Picker) MoveDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

// Cursor returns the cursor position within the filtered list.
func (p *Picker) Cursor() int {
	return p.cursor
}

// CurrentService returns the service under the cursor, or nil when the
// filtered list is empty.
func (p *Picker) CurrentService() *domain.Service {
	if len(p.filtered) == 0 || p.cursor < 0 || p.cursor >= len(p.filtered) {
		return nil
	}
	return &p.filtered[p.cursor]
}

// SetFormatter sets the price formatter.
func (p *Picker) SetFormatter(f *currency.Formatter) {
	if f != nil {
		p.formatter = f
	}
}

// SetDimensions sets the component dimensions.
func (p *Picker) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Count returns the number of visible services.
func (p *Picker) Count() int {
	return len(p.filtered)
}

// IsEmpty returns whether the filtered list is empty.
func (p *Picker) IsEmpty() bool {
	return len(p.filtered) == 0
}
