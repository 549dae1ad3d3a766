// Command boeka is a salon booking manager for the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	catalogfile "github.com/veldworks/boeka-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/veldworks/boeka-cli/internal/adapters/driven/config/file"
	"github.com/veldworks/boeka-cli/internal/adapters/driven/storage/sqlite"
	"github.com/veldworks/boeka-cli/internal/adapters/driving/cli"
	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
	"github.com/veldworks/boeka-cli/internal/core/services"
	"github.com/veldworks/boeka-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising storage: %w", err)
	}
	defer store.Close()

	settingsService := services.NewSettingsService(configStore)
	catalogService := services.NewCatalogService(store.CatalogStore())
	bookingService := services.NewBookingService(store.BookingStore(), store.CatalogStore(), settingsService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Import the catalog file at startup when one is configured, so the
	// stored catalog reflects the file before any command runs.
	if settings, err := settingsService.Get(); err == nil && settings.Catalog.Path != "" {
		source := catalogfile.NewSource(settings.Catalog.Path)
		if loaded, err := source.Load(ctx); err != nil {
			logger.Warn("Catalog import skipped: %v", err)
		} else if err := catalogService.ReplaceAll(ctx, loaded); err != nil {
			logger.Warn("Catalog import failed: %v", err)
		}

		// Hot-reload the catalog for the lifetime of the process when
		// catalog.watch is enabled.
		if settings.Catalog.Watch {
			go watchCatalog(ctx, source, catalogService)
		}
	}

	cli.SetVersion(version)
	cli.SetCatalogService(catalogService)
	cli.SetBookingService(bookingService)
	cli.SetSettingsService(settingsService)

	return cli.Execute()
}

// watchCatalog replaces the stored catalog whenever the catalog file
// changes. It runs until ctx is cancelled.
func watchCatalog(ctx context.Context, source *catalogfile.Source, catalog driving.CatalogService) {
	watcher := catalogfile.NewWatcher(source)
	err := watcher.Watch(ctx, func(loaded []domain.Service) {
		if err := catalog.ReplaceAll(ctx, loaded); err != nil {
			logger.Warn("Catalog reload failed: %v", err)
		}
	})
	if err != nil {
		logger.Warn("Catalog watcher stopped: %v", err)
	}
}
