package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure booking limits, the catalog file path and the
currency symbol.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsMaxServicesCmd = &cobra.Command{
	Use:   "max-services [count]",
	Short: "Set the per-booking service cap",
	Long: `Sets how many services a single booking may hold. In the picker,
selecting past the cap is ignored; deselecting always works.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMaxServices,
}

var settingsCatalogPathCmd = &cobra.Command{
	Use:   "catalog-path [path]",
	Short: "Set the catalog file path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCatalogPath,
}

var settingsCurrencyCmd = &cobra.Command{
	Use:   "currency [symbol]",
	Short: "Set the currency symbol",
	Long:  `Sets the symbol shown before prices, e.g. "R" renders 25000 cents as R250.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCurrency,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsMaxServicesCmd)
	settingsCmd.AddCommand(settingsCatalogPathCmd)
	settingsCmd.AddCommand(settingsCurrencyCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Booking]")
	cmd.Printf("  Max services per booking: %d\n", settings.Booking.MaxServices)
	cmd.Println()

	cmd.Println("[Catalog]")
	path := settings.Catalog.Path
	if path == "" {
		path = "(not set)"
	}
	cmd.Printf("  File: %s\n", path)
	cmd.Printf("  Watch: %t\n", settings.Catalog.Watch)
	cmd.Println()

	cmd.Println("[Currency]")
	cmd.Printf("  Symbol: %s\n", settings.Currency.Symbol)

	return nil
}

func runSettingsMaxServices(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	max, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[0], err)
	}

	if err := settingsService.SetMaxServices(max); err != nil {
		return fmt.Errorf("failed to set max services: %w", err)
	}

	cmd.Printf("Max services per booking set to %d\n", max)
	return nil
}

func runSettingsCatalogPath(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetCatalogPath(args[0]); err != nil {
		return fmt.Errorf("failed to set catalog path: %w", err)
	}

	cmd.Printf("Catalog path set to %s\n", args[0])
	return nil
}

func runSettingsCurrency(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetCurrencySymbol(args[0]); err != nil {
		return fmt.Errorf("failed to set currency symbol: %w", err)
	}

	cmd.Printf("Currency symbol set to %s\n", args[0])
	return nil
}
