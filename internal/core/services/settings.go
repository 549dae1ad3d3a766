package services

import (
	"fmt"
	"strings"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxServices    = "booking.max_services"
	keyCatalogPath    = "catalog.path"
	keyCatalogWatch   = "catalog.watch"
	keyCurrencySymbol = "currency.symbol"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Booking: domain.BookingSettings{
			MaxServices: s.getMaxServices(defaults.Booking.MaxServices),
		},
		Catalog: domain.CatalogSettings{
			Path:  s.configStore.GetString(keyCatalogPath), // No default - empty means no catalog file
			Watch: s.configStore.GetBool(keyCatalogWatch),
		},
		Currency: domain.CurrencySettings{
			Symbol: s.getString(keyCurrencySymbol, defaults.Currency.Symbol),
		},
	}

	return settings.Normalise(), nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	settings.Normalise()

	if err := s.configStore.Set(keyMaxServices, settings.Booking.MaxServices); err != nil {
		return fmt.Errorf("save max services: %w", err)
	}
	if err := s.configStore.Set(keyCatalogPath, settings.Catalog.Path); err != nil {
		return fmt.Errorf("save catalog path: %w", err)
	}
	if err := s.configStore.Set(keyCatalogWatch, settings.Catalog.Watch); err != nil {
		return fmt.Errorf("save catalog watch: %w", err)
	}
	if err := s.configStore.Set(keyCurrencySymbol, settings.Currency.Symbol); err != nil {
		return fmt.Errorf("save currency symbol: %w", err)
	}

	return nil
}

// SetMaxServices updates the per-booking service cap.
func (s *SettingsService) SetMaxServices(max int) error {
	if max < 0 {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(keyMaxServices, max)
}

// SetCatalogPath updates the catalog file path.
func (s *SettingsService) SetCatalogPath(path string) error {
	return s.configStore.Set(keyCatalogPath, strings.TrimSpace(path))
}

// SetCurrencySymbol updates the price label prefix.
func (s *SettingsService) SetCurrencySymbol(symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return domain.ErrInvalidInput
	}
	return s.configStore.Set(keyCurrencySymbol, symbol)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// getMaxServices reads the cap, falling back to the default when the key
// is missing. A stored zero is a valid value, so existence is checked
// separately from the typed read.
func (s *SettingsService) getMaxServices(fallback int) int {
	if _, ok := s.configStore.Get(keyMaxServices); !ok {
		return fallback
	}
	max := s.configStore.GetInt(keyMaxServices)
	if max < 0 {
		return fallback
	}
	return max
}

// getString reads a string value with a fallback for missing keys.
func (s *SettingsService) getString(key, fallback string) string {
	if value := s.configStore.GetString(key); value != "" {
		return value
	}
	return fallback
}
