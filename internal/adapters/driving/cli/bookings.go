package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var bookingsJSON bool

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Manage bookings",
	Long:  `View and cancel recorded bookings. Bookings are listed most recent first.`,
	RunE:  runBookingsList,
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookings",
	RunE:  runBookingsList,
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsCancel,
}

func init() {
	bookingsCmd.PersistentFlags().BoolVar(&bookingsJSON, "json", false, "output as JSON")
	bookingsCmd.AddCommand(bookingsListCmd)
	bookingsCmd.AddCommand(bookingsCancelCmd)
	rootCmd.AddCommand(bookingsCmd)
}

func runBookingsList(cmd *cobra.Command, _ []string) error {
	if bookingService == nil {
		return errors.New("booking service not configured")
	}

	bookings, err := bookingService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing bookings: %w", err)
	}

	if bookingsJSON {
		data, err := json.MarshalIndent(bookings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal bookings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(bookings) == 0 {
		cmd.Println("No bookings yet.")
		return nil
	}

	for i := range bookings {
		cmd.Printf("%s  %s  %s  [%s]\n",
			bookings[i].ID,
			bookings[i].CreatedAt.Format("2006-01-02 15:04"),
			bookings[i].ClientName,
			strings.Join(bookings[i].ServiceIDs, ", "))
	}
	return nil
}

func runBookingsCancel(cmd *cobra.Command, args []string) error {
	if bookingService == nil {
		return errors.New("booking service not configured")
	}

	if err := bookingService.Cancel(context.Background(), args[0]); err != nil {
		return fmt.Errorf("cancelling booking: %w", err)
	}

	cmd.Printf("Cancelled booking %s\n", args[0])
	return nil
}
