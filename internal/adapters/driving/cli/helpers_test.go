package cli

import (
	"context"

	"github.com/veldworks/boeka-cli/internal/adapters/driven/storage/memory"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/services"
)

// setupTestServices wires real services over in-memory stores with a
// small fixture catalog, and returns a cleanup that restores the
// previously injected services.
func setupTestServices() func() {
	oldCatalog := catalogService
	oldBooking := bookingService
	oldSettings := settingsService

	catalogStore := memory.NewCatalogStore()
	bookingStore := memory.NewBookingStore()

	settings := services.NewSettingsService(memory.NewConfigStore())
	catalog := services.NewCatalogService(catalogStore)
	booking := services.NewBookingService(bookingStore, catalogStore, settings)

	ctx := context.Background()
	seed := []domain.Service{
		{ID: "haircut", Name: "Haircut", Description: "Wash, cut and style", BasePriceCents: 25000},
		{ID: "beard-trim", Name: "Beard Trim", BasePriceCents: 12000},
		{ID: "consult", Name: "Colour Consultation"},
	}
	for i := range seed {
		_ = catalogStore.Save(ctx, seed[i])
	}

	catalogService = catalog
	bookingService = booking
	settingsService = settings

	return func() {
		catalogService = oldCatalog
		bookingService = oldBooking
		settingsService = oldSettings
	}
}
