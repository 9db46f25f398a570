package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/rental"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type returnRentalRepo struct {
	rental   *rental.Rental
	returned bool
}

func (s *returnRentalRepo) Create(ctx context.Context, r *rental.Rental) error { return nil }
func (s *returnRentalRepo) Return(ctx context.Context, r *rental.Rental) error {
	s.returned = true
	return nil
}
func (s *returnRentalRepo) Update(ctx context.Context, r *rental.Rental) error { return nil }
func (s *returnRentalRepo) GetByID(ctx context.Context, id uint) (*rental.Rental, error) {
	if s.rental == nil || s.rental.ID != id {
		return nil, errors.NewNotFoundError("rental not found")
	}
	return s.rental, nil
}
func (s *returnRentalRepo) List(ctx context.Context, filter rental.Filter) ([]*rental.Rental, error) {
	return nil, nil
}
func (s *returnRentalRepo) ListOverdueCandidates(ctx context.Context, cutoff time.Time) ([]*rental.Rental, error) {
	return nil, nil
}

func openRental(t *testing.T, rentalDate string, dayCount int) *rental.Rental {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, rentalDate)
	require.NoError(t, err)
	r, err := rental.New(1, 1, 1, 1, nil, parsed.Add(4*time.Hour), dayCount, 5000, "")
	require.NoError(t, err)
	r.ID = 1
	r.Number = "R-000001"
	return r
}

func TestReturnRentalRejectsDateBeforeRentalDate(t *testing.T) {
	repo := &returnRentalRepo{rental: openRental(t, "2024-06-10", 3)}
	uc := NewReturnRentalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ReturnRentalCommand{
		ID: 1, TenantID: 1, ReturnDate: "2024-06-09",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, repo.returned)
	assert.Equal(t, rental.StatusActive, repo.rental.Status)
}

func TestReturnRentalSameDayIsAllowed(t *testing.T) {
	repo := &returnRentalRepo{rental: openRental(t, "2024-06-10", 3)}
	uc := NewReturnRentalUseCase(repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ReturnRentalCommand{
		ID: 1, TenantID: 1, ReturnDate: "2024-06-10",
	})
	require.NoError(t, err)
	assert.True(t, repo.returned)
	assert.Equal(t, string(rental.StatusReturned), result.Status)
	assert.Equal(t, "2024-06-10", result.ActualReturn)
}

func TestReturnRentalRejectsMalformedDate(t *testing.T) {
	repo := &returnRentalRepo{rental: openRental(t, "2024-06-10", 3)}
	uc := NewReturnRentalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ReturnRentalCommand{
		ID: 1, TenantID: 1, ReturnDate: "10/06/2024",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, repo.returned)
}

func TestReturnRentalScopedToTenant(t *testing.T) {
	repo := &returnRentalRepo{rental: openRental(t, "2024-06-10", 3)}
	uc := NewReturnRentalUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ReturnRentalCommand{
		ID: 1, TenantID: 2, ReturnDate: "2024-06-11",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, repo.returned)
}
