package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	require.NotNil(t, settings)
	assert.Equal(t, DefaultMaxServices, settings.Booking.MaxServices)
	assert.Equal(t, DefaultCurrencySymbol, settings.Currency.Symbol)
	assert.Empty(t, settings.Catalog.Path)
	assert.False(t, settings.Catalog.Watch)
}

func TestAppSettings_Normalise_NegativeMaxServices(t *testing.T) {
	settings := &AppSettings{Booking: BookingSettings{MaxServices: -1}}

	settings.Normalise()

	assert.Equal(t, DefaultMaxServices, settings.Booking.MaxServices)
}

func TestAppSettings_Normalise_ZeroMaxServicesIsPermitted(t *testing.T) {
	settings := &AppSettings{
		Booking:  BookingSettings{MaxServices: 0},
		Currency: CurrencySettings{Symbol: "R"},
	}

	settings.Normalise()

	assert.Equal(t, 0, settings.Booking.MaxServices)
}

func TestAppSettings_Normalise_EmptySymbol(t *testing.T) {
	settings := &AppSettings{Booking: BookingSettings{MaxServices: 5}}

	settings.Normalise()

	assert.Equal(t, DefaultCurrencySymbol, settings.Currency.Symbol)
}
