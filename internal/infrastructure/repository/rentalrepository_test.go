package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"rentora/internal/domain/rental"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

func setupRentalDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.VehicleModel{}, &models.RentalModel{}, &models.RentalCounterModel{})
	require.NoError(t, err)

	return db
}

func seedVehicle(t *testing.T, db *gorm.DB, tenantID uint, priceCents int64) *models.VehicleModel {
	v := &models.VehicleModel{
		TenantID:         tenantID,
		Description:      "Toyota Corolla 2022",
		ChassisNumber:    "CHS-001",
		PlateNumber:      "A123456",
		VehicleTypeID:    1,
		BrandID:          1,
		ModelID:          1,
		FuelTypeID:       1,
		PricePerDayCents: priceCents,
		Available:        true,
		Active:           true,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func rentalDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 4, 0, 0, 0, time.UTC)
}

func newTestRental(t *testing.T, tenantID, vehicleID uint, dayCount int) *rental.Rental {
	// The price passed here is a stale read; Create re-snapshots it from
	// the locked vehicle row.
	r, err := rental.New(tenantID, 1, vehicleID, 1, nil, rentalDay(2024, 6, 10), dayCount, 1, "")
	require.NoError(t, err)
	return r
}

func TestRentalCreateAssignsNumberAndTotal(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v := seedVehicle(t, db, 1, 5000)

	r := newTestRental(t, 1, v.ID, 4)
	require.NoError(t, repo.Create(ctx, r))

	assert.Equal(t, "R-000001", r.Number)
	assert.Equal(t, int64(5000), r.PricePerDayCents)
	assert.Equal(t, int64(20000), r.TotalCents)

	// The vehicle is out until the rental is returned.
	var stored models.VehicleModel
	require.NoError(t, db.First(&stored, v.ID).Error)
	assert.False(t, stored.Available)
}

func TestRentalCreateNumbersArePerTenant(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v1 := seedVehicle(t, db, 1, 5000)
	v2 := &models.VehicleModel{
		TenantID: 1, Description: "Hilux", ChassisNumber: "CHS-002", PlateNumber: "B123456",
		VehicleTypeID: 1, BrandID: 1, ModelID: 1, FuelTypeID: 1,
		PricePerDayCents: 8000, Available: true, Active: true,
	}
	require.NoError(t, db.Create(v2).Error)
	v3 := &models.VehicleModel{
		TenantID: 2, Description: "Versa", ChassisNumber: "CHS-003", PlateNumber: "C123456",
		VehicleTypeID: 1, BrandID: 1, ModelID: 1, FuelTypeID: 1,
		PricePerDayCents: 3000, Available: true, Active: true,
	}
	require.NoError(t, db.Create(v3).Error)

	first := newTestRental(t, 1, v1.ID, 2)
	require.NoError(t, repo.Create(ctx, first))
	second := newTestRental(t, 1, v2.ID, 2)
	require.NoError(t, repo.Create(ctx, second))
	otherTenant := newTestRental(t, 2, v3.ID, 2)
	require.NoError(t, repo.Create(ctx, otherTenant))

	assert.Equal(t, "R-000001", first.Number)
	assert.Equal(t, "R-000002", second.Number)
	assert.Equal(t, "R-000001", otherTenant.Number)
}

func TestRentalCreateRejectsUnavailableVehicle(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v := seedVehicle(t, db, 1, 5000)
	require.NoError(t, repo.Create(ctx, newTestRental(t, 1, v.ID, 2)))

	err := repo.Create(ctx, newTestRental(t, 1, v.ID, 2))
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRentalCreateRejectsForeignTenantVehicle(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v := seedVehicle(t, db, 1, 5000)

	err := repo.Create(ctx, newTestRental(t, 2, v.ID, 2))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRentalReturnFreesVehicle(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v := seedVehicle(t, db, 1, 5000)
	r := newTestRental(t, 1, v.ID, 2)
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, r.MarkReturned(rentalDay(2024, 6, 11)))
	require.NoError(t, repo.Return(ctx, r))

	var stored models.VehicleModel
	require.NoError(t, db.First(&stored, v.ID).Error)
	assert.True(t, stored.Available)

	reloaded, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.StatusReturned, reloaded.Status)
	require.NotNil(t, reloaded.ActualReturn)

	// A second return hits the status guard in the update.
	err = repo.Return(ctx, r)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRentalListFilters(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v1 := seedVehicle(t, db, 1, 5000)
	v2 := &models.VehicleModel{
		TenantID: 1, Description: "Hilux", ChassisNumber: "CHS-002", PlateNumber: "B123456",
		VehicleTypeID: 1, BrandID: 1, ModelID: 1, FuelTypeID: 1,
		PricePerDayCents: 8000, Available: true, Active: true,
	}
	require.NoError(t, db.Create(v2).Error)

	first := newTestRental(t, 1, v1.ID, 2)
	require.NoError(t, repo.Create(ctx, first))
	second := newTestRental(t, 1, v2.ID, 2)
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, first.MarkReturned(rentalDay(2024, 6, 11)))
	require.NoError(t, repo.Return(ctx, first))

	active, err := repo.List(ctx, rental.Filter{TenantID: 1, Status: rental.StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	all, err := repo.List(ctx, rental.Filter{TenantID: 1})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := repo.List(ctx, rental.Filter{TenantID: 2})
	require.NoError(t, err)
	assert.Empty(t, none)

	byNumber, err := repo.List(ctx, rental.Filter{TenantID: 1, Search: "R-000002"})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, second.ID, byNumber[0].ID)
}

func TestRentalListOverdueCandidates(t *testing.T) {
	db := setupRentalDB(t)
	repo := NewRentalRepository(db, logger.NewLogger())
	ctx := context.Background()

	v := seedVehicle(t, db, 1, 5000)
	r := newTestRental(t, 1, v.ID, 2)
	require.NoError(t, repo.Create(ctx, r))

	// Before the scheduled return the rental is not a candidate.
	candidates, err := repo.ListOverdueCandidates(ctx, rentalDay(2024, 6, 11))
	require.NoError(t, err)
	assert.Empty(t, candidates)

	candidates, err = repo.ListOverdueCandidates(ctx, rentalDay(2024, 6, 13))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, r.ID, candidates[0].ID)

	// Once marked, it drops out of the next sweep's candidate list.
	require.NoError(t, candidates[0].MarkOverdue(rentalDay(2024, 6, 13)))
	require.NoError(t, repo.Update(ctx, candidates[0]))

	candidates, err = repo.ListOverdueCandidates(ctx, rentalDay(2024, 6, 14))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
