package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	bookClient   string
	bookServices []string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Create a booking",
	Long: `Records a booking for a client with one or more catalog services.

Service IDs are passed with repeated --service flags. The booking is
rejected if any ID is unknown, duplicated, or if the selection exceeds
the configured per-booking maximum.`,
	RunE: runBook,
}

func init() {
	bookCmd.Flags().StringVarP(&bookClient, "client", "c", "", "client name (required)")
	bookCmd.Flags().StringArrayVarP(&bookServices, "service", "s", nil, "service ID to book (repeatable)")
	_ = bookCmd.MarkFlagRequired("client")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, _ []string) error {
	if bookingService == nil {
		return errors.New("booking service not configured")
	}

	ctx := context.Background()
	booking, err := bookingService.Create(ctx, bookClient, bookServices)
	if err != nil {
		return fmt.Errorf("creating booking: %w", err)
	}

	cmd.Printf("Booked %s for %s (%d services)\n", booking.ID, booking.ClientName, len(booking.ServiceIDs))

	if catalogService == nil {
		return nil
	}

	// Show the booked services with prices when the catalog is available.
	fmtr := formatter()
	var total int64
	for _, id := range booking.ServiceIDs {
		service, err := catalogService.Get(ctx, id)
		if err != nil {
			continue
		}
		line := "  " + service.Name
		if service.HasPrice() {
			line += "  " + fmtr.Format(service.BasePriceCents)
			total += service.BasePriceCents
		}
		cmd.Println(line)
	}
	if total > 0 {
		cmd.Printf("Total: %s\n", fmtr.Format(total))
	}
	return nil
}
