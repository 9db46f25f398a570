// Package migrate implements the `migrate` CLI command on top of the
// embedded goose migrations.
package migrate

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rentora/internal/infrastructure/config"
	"rentora/internal/infrastructure/database"
	"rentora/internal/infrastructure/migration"
	"rentora/internal/infrastructure/repository"
	"rentora/internal/infrastructure/seeds"
	"rentora/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func withDatabase(fn func(m *migration.Manager) error) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(migration.NewManager(database.Get()))
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(m *migration.Manager) error {
				return m.Up()
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(m *migration.Manager) error {
				return m.Down()
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(m *migration.Manager) error {
				return m.Status()
			})
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default subscription plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(m *migration.Manager) error {
				log := logger.NewLogger()
				planRepo := repository.NewPlanRepository(database.Get(), log)
				return seeds.SeedPlans(context.Background(), planRepo, log)
			})
		},
	}
}
