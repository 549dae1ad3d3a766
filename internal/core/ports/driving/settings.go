package driving

import "github.com/veldworks/boeka-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetMaxServices updates the per-booking service cap.
	SetMaxServices(max int) error

	// SetCatalogPath updates the catalog file path.
	SetCatalogPath(path string) error

	// SetCurrencySymbol updates the price label prefix.
	SetCurrencySymbol(symbol string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
