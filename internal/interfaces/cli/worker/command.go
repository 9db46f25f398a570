// Package worker implements the `worker` CLI command that runs the
// scheduled background jobs.
package worker

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	rentalUsecases "rentora/internal/application/rental/usecases"
	subscriptionUsecases "rentora/internal/application/subscription/usecases"
	"rentora/internal/infrastructure/config"
	"rentora/internal/infrastructure/database"
	"rentora/internal/infrastructure/repository"
	"rentora/internal/infrastructure/scheduler"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the background job worker",
		Long:  `Run the overdue rental sweep and subscription expiry jobs on their configured intervals.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
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
	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return fmt.Errorf("failed to load business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	rentalRepo := repository.NewRentalRepository(database.Get(), log)
	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log)

	sweepUC := rentalUsecases.NewSweepOverdueUseCase(rentalRepo, log)
	expireUC := subscriptionUsecases.NewExpireSubscriptionsUseCase(subscriptionRepo, log)

	manager, err := scheduler.NewManager(log)
	if err != nil {
		return fmt.Errorf("failed to build scheduler: %w", err)
	}

	if err := manager.RegisterJob("overdue_sweep", time.Duration(cfg.Worker.OverdueSweepMinutes)*time.Minute, sweepUC); err != nil {
		return fmt.Errorf("failed to register overdue sweep: %w", err)
	}
	if err := manager.RegisterJob("subscription_expiry", time.Duration(cfg.Worker.SubscriptionExpiryMinutes)*time.Minute, expireUC); err != nil {
		return fmt.Errorf("failed to register subscription expiry: %w", err)
	}

	manager.Start()
	logger.Info("worker started",
		"overdue_sweep_minutes", cfg.Worker.OverdueSweepMinutes,
		"subscription_expiry_minutes", cfg.Worker.SubscriptionExpiryMinutes)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker...")
	if err := manager.Stop(); err != nil {
		logger.Error("failed to stop scheduler", "error", err)
		return err
	}

	logger.Info("worker exited gracefully")
	return nil
}
