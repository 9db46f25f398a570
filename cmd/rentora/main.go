package main

import (
	"os"

	"github.com/spf13/cobra"

	"rentora/internal/interfaces/cli/migrate"
	"rentora/internal/interfaces/cli/server"
	"rentora/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rentora",
		Short: "Rentora - multi-tenant vehicle rental administration",
		Long:  `Rentora is the administration backend for vehicle rental businesses: fleet, clients, rentals, inspections and subscription plans.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
