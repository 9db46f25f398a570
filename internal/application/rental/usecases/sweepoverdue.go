package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/logger"
)

// SweepOverdueUseCase flips active rentals whose scheduled return has
// passed to Vencida. It runs as a worker job; a rental the sweep misses is
// picked up on the next run, and one returned between the listing and the
// update is skipped by the domain guard.
type SweepOverdueUseCase struct {
	rentalRepo rental.Repository
	logger     logger.Interface
}

func NewSweepOverdueUseCase(rentalRepo rental.Repository, logger logger.Interface) *SweepOverdueUseCase {
	return &SweepOverdueUseCase{rentalRepo: rentalRepo, logger: logger}
}

// Execute satisfies scheduler.BatchJob. The cutoff is the current
// business day's midnight: a rental due today stays Activa until the day
// ends, only earlier scheduled returns become overdue.
func (uc *SweepOverdueUseCase) Execute(ctx context.Context) (int, error) {
	today := biztime.StartOfDayUTC(time.Now())
	candidates, err := uc.rentalRepo.ListOverdueCandidates(ctx, today)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, r := range candidates {
		if err := r.MarkOverdue(today); err != nil {
			continue
		}
		if err := uc.rentalRepo.Update(ctx, r); err != nil {
			uc.logger.Errorw("failed to mark rental overdue", "rental_id", r.ID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		uc.logger.Infow("overdue sweep finished", "marked", marked, "candidates", len(candidates))
	}
	return marked, nil
}
