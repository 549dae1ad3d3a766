// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/input"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/components/toast"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/keymap"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/styles"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
)

// field identifies an editable setting.
type field int

const (
	fieldMaxServices field = iota
	fieldCatalogPath
	fieldCurrencySymbol
	fieldCount
)

func (f field) label() string {
	switch f {
	case fieldMaxServices:
		return "Max services per booking"
	case fieldCatalogPath:
		return "Catalog file"
	case fieldCurrencySymbol:
		return "Currency symbol"
	default:
		return "unknown"
	}
}

// View shows and edits application settings.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	editor *input.TextInput
	notice *toast.Toast

	settingsService driving.SettingsService
	ctx             context.Context

	settings *domain.AppSettings
	selected field
	editing  bool
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates the settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	editor := input.New(s, "Value", "")
	editor.Blur()

	return &View{
		styles:          s,
		keymap:          km,
		editor:          editor,
		notice:          toast.New(s),
		settingsService: settingsService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset cancels any in-progress edit.
func (v *View) Reset() {
	v.editing = false
	v.editor.Reset()
	v.editor.Blur()
	v.notice.Hide()
	v.selected = fieldMaxServices
	v.err = nil
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.settings = msg.Settings
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			return v, v.notice.Show("Save failed: "+msg.Err.Error(), toast.LevelError)
		}
		return v, tea.Batch(
			v.notice.Show("Settings saved", toast.LevelSuccess),
			v.loadSettings(),
		)

	case messages.ToastExpired:
		v.notice, _ = v.notice.Update(msg)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.editing {
		return v.handleEditKey(msg)
	}

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
		if v.selected < fieldCount-1 {
			v.selected++
		}
	case msg.Type == tea.KeyEnter:
		v.startEdit()
		return v, v.editor.Focus()
	}

	return v, nil
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.editor.Reset()
		v.editor.Blur()
		return v, nil
	case tea.KeyEnter:
		return v, v.saveEdit()
	default:
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v *View) startEdit() {
	v.editing = true
	v.editor.Reset()
	if v.settings == nil {
		return
	}
	switch v.selected {
	case fieldMaxServices:
		v.editor.SetValue(strconv.Itoa(v.settings.Booking.MaxServices))
	case fieldCatalogPath:
		v.editor.SetValue(v.settings.Catalog.Path)
	case fieldCurrencySymbol:
		v.editor.SetValue(v.settings.Currency.Symbol)
	case fieldCount:
	}
}

// saveEdit persists the edited field through the settings service.
func (v *View) saveEdit() tea.Cmd {
	value := strings.TrimSpace(v.editor.Value())
	fieldToSave := v.selected
	v.editing = false
	v.editor.Blur()

	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}

		var err error
		switch fieldToSave {
		case fieldMaxServices:
			var max int
			max, err = strconv.Atoi(value)
			if err == nil {
				err = v.settingsService.SetMaxServices(max)
			}
		case fieldCatalogPath:
			err = v.settingsService.SetCatalogPath(value)
		case fieldCurrencySymbol:
			err = v.settingsService.SetCurrencySymbol(value)
		case fieldCount:
		}
		return messages.SettingsSaved{Err: err}
	}
}

// loadSettings fetches settings from the service.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Settings: domain.DefaultAppSettings()}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Settings"), "")

	if v.notice.Visible() {
		sections = append(sections, v.notice.View(), "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.renderFields())

	if v.editing {
		sections = append(sections, "", v.editor.View())
	}

	sections = append(sections, "", v.styles.Help.Render("[j/k] Navigate  [Enter] Edit  [esc] Back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderFields() string {
	lines := make([]string, 0, int(fieldCount))
	for f := field(0); f < fieldCount; f++ {
		cursor := "  "
		if f == v.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s: %s", cursor, f.label(), v.fieldValue(f))
		if f == v.selected {
			lines = append(lines, v.styles.Selected.Render(line))
		} else {
			lines = append(lines, v.styles.Normal.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (v *View) fieldValue(f field) string {
	if v.settings == nil {
		return "..."
	}
	switch f {
	case fieldMaxServices:
		return strconv.Itoa(v.settings.Booking.MaxServices)
	case fieldCatalogPath:
		if v.settings.Catalog.Path == "" {
			return "(not set)"
		}
		return v.settings.Catalog.Path
	case fieldCurrencySymbol:
		return v.settings.Currency.Symbol
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.editor.SetWidth(width)
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Editing returns whether a field edit is in progress.
func (v *View) Editing() bool {
	return v.editing
}

// Selected returns the index of the highlighted field.
func (v *View) Selected() int {
	return int(v.selected)
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
