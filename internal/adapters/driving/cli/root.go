// Package cli implements the command-line interface for Boeka.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/veldworks/boeka-cli/internal/core/ports/driving"
	"github.com/veldworks/boeka-cli/internal/currency"
	"github.com/veldworks/boeka-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	catalogService  driving.CatalogService
	bookingService  driving.BookingService
	settingsService driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "boeka",
	Short: "Salon booking manager",
	Long: `Boeka manages a salon's service catalog and client bookings
from the terminal.

Browse and search the catalog, pick services for a client, and record
bookings either through subcommands or the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetCatalogService injects the catalog service.
func SetCatalogService(s driving.CatalogService) {
	catalogService = s
}

// SetBookingService injects the booking service.
func SetBookingService(s driving.BookingService) {
	bookingService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// formatter builds a price formatter from the configured currency
// symbol, falling back to the default when settings are unavailable.
func formatter() *currency.Formatter {
	symbol := ""
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			symbol = settings.Currency.Symbol
		}
	}
	return currency.NewFormatter(symbol)
}
