package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	catalogfile "github.com/veldworks/boeka-cli/internal/adapters/driven/catalog/file"
	"github.com/veldworks/boeka-cli/internal/core/domain"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import and watch catalog files",
	Long: `Loads the service catalog from a TOML file.

Import replaces the stored catalog once; watch keeps the stored catalog
in sync with the file until interrupted.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the catalog from a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogImport,
}

var catalogWatchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Keep the catalog in sync with a TOML file",
	Long: `Watches the catalog file and replaces the stored catalog on every
change. Runs until interrupted with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogWatch,
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogWatchCmd)
	rootCmd.AddCommand(catalogCmd)
}

// catalogPath resolves the catalog file path from the argument or the
// configured default.
func catalogPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err == nil && settings.Catalog.Path != "" {
			return settings.Catalog.Path, nil
		}
	}
	return "", errors.New("no catalog file given and no catalog path configured")
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	path, err := catalogPath(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	source := catalogfile.NewSource(path)
	services, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if err := catalogService.ReplaceAll(ctx, services); err != nil {
		return fmt.Errorf("replacing catalog: %w", err)
	}

	cmd.Printf("Imported %d services from %s\n", len(services), path)
	return nil
}

func runCatalogWatch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	path, err := catalogPath(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := catalogfile.NewSource(path)

	// Import once up front so the store matches the file before the
	// first change arrives.
	services, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if err := catalogService.ReplaceAll(ctx, services); err != nil {
		return fmt.Errorf("replacing catalog: %w", err)
	}
	cmd.Printf("Imported %d services from %s, watching for changes...\n", len(services), path)

	watcher := catalogfile.NewWatcher(source)
	err = watcher.Watch(ctx, func(services []domain.Service) {
		if err := catalogService.ReplaceAll(ctx, services); err != nil {
			cmd.PrintErrf("catalog update failed: %v\n", err)
			return
		}
		cmd.Printf("Catalog updated: %d services\n", len(services))
	})
	if err != nil {
		return fmt.Errorf("watching catalog: %w", err)
	}
	return nil
}
