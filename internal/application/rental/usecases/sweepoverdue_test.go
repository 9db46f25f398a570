package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type sweepRentalRepo struct {
	candidates []*rental.Rental
	updated    []*rental.Rental
	updateErr  error
	cutoff     time.Time
}

func (s *sweepRentalRepo) Create(ctx context.Context, r *rental.Rental) error { return nil }
func (s *sweepRentalRepo) Return(ctx context.Context, r *rental.Rental) error { return nil }
func (s *sweepRentalRepo) Update(ctx context.Context, r *rental.Rental) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, r)
	return nil
}
func (s *sweepRentalRepo) GetByID(ctx context.Context, id uint) (*rental.Rental, error) {
	return nil, errors.NewNotFoundError("rental not found")
}
func (s *sweepRentalRepo) List(ctx context.Context, filter rental.Filter) ([]*rental.Rental, error) {
	return nil, nil
}
func (s *sweepRentalRepo) ListOverdueCandidates(ctx context.Context, cutoff time.Time) ([]*rental.Rental, error) {
	s.cutoff = cutoff
	return s.candidates, nil
}

func overdueRental(id uint, scheduledReturn time.Time, status rental.Status) *rental.Rental {
	return &rental.Rental{
		ID:              id,
		TenantID:        1,
		Number:          "R-000001",
		ScheduledReturn: scheduledReturn,
		Status:          status,
		Active:          true,
	}
}

func TestSweepOverdueMarksExpiredActives(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	repo := &sweepRentalRepo{
		candidates: []*rental.Rental{
			overdueRental(1, past, rental.StatusActive),
			overdueRental(2, past, rental.StatusActive),
		},
	}
	uc := NewSweepOverdueUseCase(repo, logger.NewLogger())

	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	require.Len(t, repo.updated, 2)
	for _, r := range repo.updated {
		assert.Equal(t, rental.StatusOverdue, r.Status)
	}
}

func TestSweepOverdueSkipsGuardedCandidates(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	future := time.Now().UTC().Add(48 * time.Hour)
	repo := &sweepRentalRepo{
		candidates: []*rental.Rental{
			// Returned between the listing and the update.
			overdueRental(1, past, rental.StatusReturned),
			// Not actually past its scheduled return.
			overdueRental(2, future, rental.StatusActive),
			overdueRental(3, past, rental.StatusActive),
		},
	}
	uc := NewSweepOverdueUseCase(repo, logger.NewLogger())

	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, marked)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, uint(3), repo.updated[0].ID)
}

func TestSweepOverdueLeavesDueTodayActive(t *testing.T) {
	today := biztime.StartOfDayUTC(time.Now())
	dueToday := overdueRental(1, today, rental.StatusActive)
	dueYesterday := overdueRental(2, today.AddDate(0, 0, -1), rental.StatusActive)
	repo := &sweepRentalRepo{candidates: []*rental.Rental{dueToday, dueYesterday}}
	uc := NewSweepOverdueUseCase(repo, logger.NewLogger())

	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// The sweep cuts off at business midnight: a rental due today stays
	// Activa until the day ends.
	assert.Equal(t, today, repo.cutoff)
	assert.Equal(t, 1, marked)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, uint(2), repo.updated[0].ID)
	assert.Equal(t, rental.StatusActive, dueToday.Status)
}

func TestSweepOverdueCountsOnlyPersistedUpdates(t *testing.T) {
	past := time.Now().UTC().Add(-48 * time.Hour)
	repo := &sweepRentalRepo{
		candidates: []*rental.Rental{overdueRental(1, past, rental.StatusActive)},
		updateErr:  errors.NewInternalError("database is down"),
	}
	uc := NewSweepOverdueUseCase(repo, logger.NewLogger())

	marked, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, marked)
}
