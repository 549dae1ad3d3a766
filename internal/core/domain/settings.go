package domain

// DefaultMaxServices is the default cap on services per booking.
const DefaultMaxServices = 10

// DefaultCurrencySymbol is the default currency prefix for price labels.
const DefaultCurrencySymbol = "R"

// BookingSettings holds booking behaviour configuration.
type BookingSettings struct {
	// MaxServices is the maximum number of services per booking.
	// Zero is permitted and means no service may be added.
	MaxServices int
}

// CatalogSettings holds catalog source configuration.
type CatalogSettings struct {
	// Path is the optional TOML catalog file imported at startup.
	Path string

	// Watch enables hot-reloading the catalog file on change.
	Watch bool
}

// CurrencySettings holds price label configuration.
type CurrencySettings struct {
	// Symbol is the literal prefix for price labels.
	Symbol string
}

// AppSettings holds all user-configurable application settings.
type AppSettings struct {
	// Booking holds booking behaviour settings.
	Booking BookingSettings

	// Catalog holds catalog source settings.
	Catalog CatalogSettings

	// Currency holds price label settings.
	Currency CurrencySettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Booking: BookingSettings{
			MaxServices: DefaultMaxServices,
		},
		Catalog: CatalogSettings{
			Path:  "",
			Watch: false,
		},
		Currency: CurrencySettings{
			Symbol: DefaultCurrencySymbol,
		},
	}
}

// Normalise replaces invalid values with defaults and returns the settings.
func (s *AppSettings) Normalise() *AppSettings {
	if s.Booking.MaxServices < 0 {
		s.Booking.MaxServices = DefaultMaxServices
	}
	if s.Currency.Symbol == "" {
		s.Currency.Symbol = DefaultCurrencySymbol
	}
	return s
}
