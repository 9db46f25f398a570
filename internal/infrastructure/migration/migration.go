// Package migration runs the embedded goose SQL migrations.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"rentora/internal/shared/logger"
)

//go:embed scripts/*.sql
var scripts embed.FS

// Manager applies goose migrations from the embedded scripts directory.
type Manager struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:     db,
		logger: logger.NewLogger().With("component", "migration"),
	}
}

func (m *Manager) prepare() error {
	goose.SetBaseFS(scripts)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Up applies all pending migrations.
func (m *Manager) Up() error {
	if err := m.prepare(); err != nil {
		return err
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	before, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if err := goose.Up(sqlDB, "scripts"); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	after, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	m.logger.Infow("migrations applied", "from_version", before, "to_version", after)
	return nil
}

// Down rolls back the most recent migration.
func (m *Manager) Down() error {
	if err := m.prepare(); err != nil {
		return err
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.Down(sqlDB, "scripts"); err != nil {
		m.logger.Errorw("rollback failed", "error", err)
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	m.logger.Infow("migration rolled back")
	return nil
}

// Status logs the state of every known migration.
func (m *Manager) Status() error {
	if err := m.prepare(); err != nil {
		return err
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.Status(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}
