package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldworks/boeka-cli/internal/core/domain"
)

var (
	servicesJSON      bool
	servicesLimit     int
	addDescription    string
	addBasePriceCents int64
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the service catalog",
	Long: `View and manage the salon's service catalog.

Use subcommands to list, search, add or remove services.`,
	RunE: runServicesList,
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all services",
	RunE:  runServicesList,
}

var servicesSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search services by name or description",
	Long: `Finds services whose name or description contains the query,
ignoring case. Results keep their catalog order.`,
	Args: cobra.ExactArgs(1),
	RunE: runServicesSearch,
}

var servicesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a service to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicesAdd,
}

var servicesRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a service from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runServicesRemove,
}

func init() {
	servicesCmd.PersistentFlags().BoolVar(&servicesJSON, "json", false, "output as JSON")
	servicesSearchCmd.Flags().IntVarP(&servicesLimit, "limit", "n", 0, "maximum number of results (0 = unlimited)")
	servicesAddCmd.Flags().StringVarP(&addDescription, "description", "d", "", "service description")
	servicesAddCmd.Flags().Int64VarP(&addBasePriceCents, "price-cents", "p", 0, "base price in cents (0 = no listed price)")

	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesSearchCmd)
	servicesCmd.AddCommand(servicesAddCmd)
	servicesCmd.AddCommand(servicesRemoveCmd)
	rootCmd.AddCommand(servicesCmd)
}

func runServicesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	services, err := catalogService.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing services: %w", err)
	}

	return outputServices(cmd, services)
}

func runServicesSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	services, err := catalogService.Search(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("searching services: %w", err)
	}

	if servicesLimit > 0 && len(services) > servicesLimit {
		services = services[:servicesLimit]
	}

	if len(services) == 0 {
		cmd.Printf("No services found for %q.\n", args[0])
		return nil
	}

	return outputServices(cmd, services)
}

func runServicesAdd(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	service, err := catalogService.Add(context.Background(), args[0], addDescription, addBasePriceCents)
	if err != nil {
		return fmt.Errorf("adding service: %w", err)
	}

	cmd.Printf("Added service %q (%s)\n", service.Name, service.ID)
	return nil
}

func runServicesRemove(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if err := catalogService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("removing service: %w", err)
	}

	cmd.Printf("Removed service %s\n", args[0])
	return nil
}

func outputServices(cmd *cobra.Command, services []domain.Service) error {
	if servicesJSON {
		data, err := json.MarshalIndent(services, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal services: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(services) == 0 {
		cmd.Println("Catalog is empty.")
		return nil
	}

	fmtr := formatter()
	for i := range services {
		line := fmt.Sprintf("%s  %s", services[i].ID, services[i].Name)
		if services[i].HasPrice() {
			line += fmt.Sprintf("  %s", fmtr.Format(services[i].BasePriceCents))
		}
		cmd.Println(line)
		if services[i].Description != "" {
			cmd.Printf("    %s\n", services[i].Description)
		}
	}
	return nil
}
