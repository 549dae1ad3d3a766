package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldworks/boeka-cli/internal/adapters/driven/storage/memory"
	"github.com/veldworks/boeka-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Booking.MaxServices, settings.Booking.MaxServices)
	assert.Equal(t, defaults.Currency.Symbol, settings.Currency.Symbol)
	assert.Empty(t, settings.Catalog.Path)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("booking.max_services", 4)
	_ = store.Set("catalog.path", "/srv/catalog.toml")
	_ = store.Set("catalog.watch", true)
	_ = store.Set("currency.symbol", "$")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 4, settings.Booking.MaxServices)
	assert.Equal(t, "/srv/catalog.toml", settings.Catalog.Path)
	assert.True(t, settings.Catalog.Watch)
	assert.Equal(t, "$", settings.Currency.Symbol)
}

func TestSettingsService_Get_StoredZeroCapIsKept(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("booking.max_services", 0)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 0, settings.Booking.MaxServices)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("booking.max_services", -5)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxServices, settings.Booking.MaxServices)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Booking:  domain.BookingSettings{MaxServices: 3},
		Catalog:  domain.CatalogSettings{Path: "catalog.toml", Watch: true},
		Currency: domain.CurrencySettings{Symbol: "R"},
	}

	require.NoError(t, service.Save(settings))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Booking.MaxServices)
	assert.Equal(t, "catalog.toml", loaded.Catalog.Path)
	assert.True(t, loaded.Catalog.Watch)
}

func TestSettingsService_SetMaxServices_Negative(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetMaxServices(-1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetCurrencySymbol_Blank(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetCurrencySymbol("  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultMaxServices, defaults.Booking.MaxServices)
}
