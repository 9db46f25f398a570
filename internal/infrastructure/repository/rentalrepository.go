package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentora/internal/domain/rental"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

// RentalRepositoryImpl implements rental.Repository. Create and Return
// are single database transactions covering the rental row, the vehicle's
// availability flag and (for Create) the tenant's number sequence.
type RentalRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRentalRepository(db *gorm.DB, logger logger.Interface) rental.Repository {
	return &RentalRepositoryImpl{db: db, logger: logger}
}

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect has row
// locks. SQLite (tests) does not; its transactions serialize writers
// anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Create locks the vehicle row, re-snapshots its daily rate, takes the
// next number from the tenant's sequence and flips the vehicle to
// unavailable. Any failure rolls the whole thing back.
func (r *RentalRepositoryImpl) Create(ctx context.Context, rent *rental.Rental) error {
	model := rentalToModel(rent)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.VehicleModel
		err := lockForUpdate(tx).
			First(&vehicle, rent.VehicleID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("vehicle not found")
			}
			return fmt.Errorf("failed to lock vehicle: %w", err)
		}
		if vehicle.TenantID != rent.TenantID {
			return errors.NewNotFoundError("vehicle not found")
		}
		if !vehicle.Active {
			return errors.NewConflictError("vehicle is no longer registered")
		}
		if !vehicle.Available {
			return errors.NewConflictError("vehicle is already rented out")
		}

		// The rate under the lock wins over whatever the caller read.
		model.PricePerDayCents = vehicle.PricePerDayCents
		model.TotalCents = vehicle.PricePerDayCents * int64(model.DayCount)

		number, err := nextRentalNumber(tx, rent.TenantID)
		if err != nil {
			return err
		}
		model.Number = number

		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("rental number already taken")
			}
			return fmt.Errorf("failed to create rental: %w", err)
		}

		return tx.Model(&models.VehicleModel{}).
			Where("id = ?", vehicle.ID).
			Update("available", false).Error
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to create rental", "tenant_id", rent.TenantID, "vehicle_id", rent.VehicleID, "error", err)
		}
		return err
	}

	rent.ID = model.ID
	rent.Number = model.Number
	rent.PricePerDayCents = model.PricePerDayCents
	rent.TotalCents = model.TotalCents

	r.logger.Infow("rental created",
		"id", model.ID,
		"number", model.Number,
		"tenant_id", model.TenantID,
		"vehicle_id", model.VehicleID,
		"total_cents", model.TotalCents)
	return nil
}

// nextRentalNumber takes the next value from the tenant's counter row
// under a row lock, creating the row on first use.
func nextRentalNumber(tx *gorm.DB, tenantID uint) (string, error) {
	counter := models.RentalCounterModel{TenantID: tenantID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error; err != nil {
		return "", fmt.Errorf("failed to seed rental counter: %w", err)
	}

	if err := lockForUpdate(tx).
		First(&counter, "tenant_id = ?", tenantID).Error; err != nil {
		return "", fmt.Errorf("failed to lock rental counter: %w", err)
	}

	counter.LastValue++
	if err := tx.Model(&models.RentalCounterModel{}).
		Where("tenant_id = ?", tenantID).
		Update("last_value", counter.LastValue).Error; err != nil {
		return "", fmt.Errorf("failed to advance rental counter: %w", err)
	}

	return fmt.Sprintf("R-%06d", counter.LastValue), nil
}

// Return persists the Devuelta transition and frees the vehicle in the
// same transaction.
func (r *RentalRepositoryImpl) Return(ctx context.Context, rent *rental.Rental) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RentalModel{}).
			Where("id = ? AND status <> ?", rent.ID, string(rental.StatusReturned)).
			Updates(map[string]interface{}{
				"status":        string(rent.Status),
				"actual_return": rent.ActualReturn,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update rental: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewConflictError("rental is already returned")
		}

		return tx.Model(&models.VehicleModel{}).
			Where("id = ?", rent.VehicleID).
			Update("available", true).Error
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to return rental", "id", rent.ID, "error", err)
		}
		return err
	}

	r.logger.Infow("rental returned", "id", rent.ID, "number", rent.Number, "vehicle_id", rent.VehicleID)
	return nil
}

func (r *RentalRepositoryImpl) Update(ctx context.Context, rent *rental.Rental) error {
	result := r.db.WithContext(ctx).Model(&models.RentalModel{}).
		Where("id = ?", rent.ID).
		Updates(map[string]interface{}{
			"status":        string(rent.Status),
			"actual_return": rent.ActualReturn,
			"comment":       rent.Comment,
			"active":        rent.Active,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update rental", "id", rent.ID, "error", result.Error)
		return fmt.Errorf("failed to update rental: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("rental not found")
	}
	return nil
}

func (r *RentalRepositoryImpl) GetByID(ctx context.Context, id uint) (*rental.Rental, error) {
	var model models.RentalModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("rental not found")
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return rentalToDomain(&model), nil
}

func (r *RentalRepositoryImpl) List(ctx context.Context, filter rental.Filter) ([]*rental.Rental, error) {
	query := r.db.WithContext(ctx).Model(&models.RentalModel{}).Where("active = ?", true)
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.EmployeeID != 0 {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if !filter.From.IsZero() {
		query = query.Where("rental_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("rental_date <= ?", filter.To)
	}

	var rows []models.RentalModel
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}

	rentals := make([]*rental.Rental, 0, len(rows))
	for i := range rows {
		rent := rentalToDomain(&rows[i])
		if filter.Search != "" && !utils.MatchesSearch(filter.Search, rent.Number, rent.Comment) {
			continue
		}
		rentals = append(rentals, rent)
	}
	return rentals, nil
}

func (r *RentalRepositoryImpl) ListOverdueCandidates(ctx context.Context, cutoff time.Time) ([]*rental.Rental, error) {
	var rows []models.RentalModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_return < ?", string(rental.StatusActive), cutoff).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue candidates: %w", err)
	}

	rentals := make([]*rental.Rental, 0, len(rows))
	for i := range rows {
		rentals = append(rentals, rentalToDomain(&rows[i]))
	}
	return rentals, nil
}

func rentalToModel(rent *rental.Rental) *models.RentalModel {
	return &models.RentalModel{
		ID:               rent.ID,
		TenantID:         rent.TenantID,
		Number:           rent.Number,
		EmployeeID:       rent.EmployeeID,
		VehicleID:        rent.VehicleID,
		ClientID:         rent.ClientID,
		InspectionID:     rent.InspectionID,
		RentalDate:       rent.RentalDate,
		ScheduledReturn:  rent.ScheduledReturn,
		ActualReturn:     rent.ActualReturn,
		PricePerDayCents: rent.PricePerDayCents,
		DayCount:         rent.DayCount,
		TotalCents:       rent.TotalCents,
		Comment:          rent.Comment,
		Status:           string(rent.Status),
		Active:           rent.Active,
		CreatedAt:        rent.CreatedAt,
		UpdatedAt:        rent.UpdatedAt,
	}
}

func rentalToDomain(m *models.RentalModel) *rental.Rental {
	return &rental.Rental{
		ID:               m.ID,
		TenantID:         m.TenantID,
		Number:           m.Number,
		EmployeeID:       m.EmployeeID,
		VehicleID:        m.VehicleID,
		ClientID:         m.ClientID,
		InspectionID:     m.InspectionID,
		RentalDate:       m.RentalDate,
		ScheduledReturn:  m.ScheduledReturn,
		ActualReturn:     m.ActualReturn,
		PricePerDayCents: m.PricePerDayCents,
		DayCount:         m.DayCount,
		TotalCents:       m.TotalCents,
		Comment:          m.Comment,
		Status:           rental.Status(m.Status),
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
