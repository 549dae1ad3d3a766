package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldworks/boeka-cli/internal/adapters/driving/tui/messages"
	"github.com/veldworks/boeka-cli/internal/core/domain"
)

type mockSettingsService struct {
	settings *domain.AppSettings

	gotMax    *int
	gotPath   *string
	gotSymbol *string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.settings == nil {
		return domain.DefaultAppSettings(), nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = settings
	return nil
}

func (m *mockSettingsService) SetMaxServices(max int) error {
	m.gotMax = &max
	return nil
}

func (m *mockSettingsService) SetCatalogPath(path string) error {
	m.gotPath = &path
	return nil
}

func (m *mockSettingsService) SetCurrencySymbol(symbol string) error {
	m.gotSymbol = &symbol
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

func loadedView(t *testing.T) (*View, *mockSettingsService) {
	t.Helper()

	svc := &mockSettingsService{}
	view := NewView(nil, nil, svc)
	view.SetDimensions(80, 24)
	view.Update(messages.SettingsLoaded{Settings: domain.DefaultAppSettings()})
	return view, svc
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_ShowsFields(t *testing.T) {
	view, _ := loadedView(t)

	out := view.View()

	assert.Contains(t, out, "Max services per booking: 10")
	assert.Contains(t, out, "Catalog file: (not set)")
	assert.Contains(t, out, "Currency symbol: R")
}

func TestView_Navigation(t *testing.T) {
	view, _ := loadedView(t)

	view.Update(keyRunes("j"))
	assert.Equal(t, 1, view.Selected())

	view.Update(keyRunes("j"))
	view.Update(keyRunes("j")) // boundary
	assert.Equal(t, 2, view.Selected())

	view.Update(keyRunes("k"))
	assert.Equal(t, 1, view.Selected())
}

func TestView_EnterStartsEditWithCurrentValue(t *testing.T) {
	view, _ := loadedView(t)

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, view.Editing())
	assert.Equal(t, "10", view.editor.Value())
}

func TestView_EditMaxServices_Saves(t *testing.T) {
	view, svc := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.editor.SetValue("5")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	require.NotNil(t, svc.gotMax)
	assert.Equal(t, 5, *svc.gotMax)
	assert.False(t, view.Editing())
}

func TestView_EditMaxServices_RejectsNonNumeric(t *testing.T) {
	view, svc := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.editor.SetValue("many")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.Error(t, saved.Err)
	assert.Nil(t, svc.gotMax)
}

func TestView_EditCurrencySymbol_Saves(t *testing.T) {
	view, svc := loadedView(t)
	view.Update(keyRunes("j"))
	view.Update(keyRunes("j")) // currency field
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view.editor.SetValue("$")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	require.NotNil(t, svc.gotSymbol)
	assert.Equal(t, "$", *svc.gotSymbol)
}

func TestView_EscCancelsEdit(t *testing.T) {
	view, _ := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, view.Editing())

	view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, view.Editing())
}

func TestView_EscGoesToMenu(t *testing.T) {
	view, _ := loadedView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestView_SavedShowsToast(t *testing.T) {
	view, _ := loadedView(t)

	_, cmd := view.Update(messages.SettingsSaved{})

	require.NotNil(t, cmd)
	assert.Contains(t, view.View(), "Settings saved")
}
