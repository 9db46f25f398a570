// Package scheduler manages background jobs with gocron v2: the overdue
// rental sweep and subscription expiry.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"rentora/internal/shared/biztime"
	"rentora/internal/shared/logger"
)

// BatchJob processes one batch per Execute call and returns the number of
// items it touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// Manager owns the single gocron scheduler instance. Jobs run in the
// business timezone so date-based cutoffs fall on the right calendar day.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}
	return &Manager{scheduler: scheduler, logger: log}, nil
}

// RegisterJob schedules a batch job at a fixed interval, firing once
// immediately on startup.
func (m *Manager) RegisterJob(name string, interval time.Duration, job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			processed, err := job.Execute(ctx)
			if err != nil {
				m.logger.Errorw("scheduled job failed", "job", name, "error", err)
				return
			}
			if processed > 0 {
				m.logger.Infow("scheduled job completed", "job", name, "processed", processed)
			}
		}),
		gocron.WithName(name),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("job registered", "job", name, "interval", interval)
	return nil
}

func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}
	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started")
}

func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false
	return m.scheduler.Shutdown()
}
