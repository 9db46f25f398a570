package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/fleet"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

// VehicleRepositoryImpl implements fleet.VehicleRepository. Create and
// SoftDelete maintain the tenant's vehicle counter in the same
// transaction as the entity write.
type VehicleRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewVehicleRepository(db *gorm.DB, logger logger.Interface) fleet.VehicleRepository {
	return &VehicleRepositoryImpl{db: db, logger: logger}
}

func (r *VehicleRepositoryImpl) Create(ctx context.Context, v *fleet.Vehicle) error {
	model := vehicleToModel(v)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("plate or chassis number already registered")
			}
			return fmt.Errorf("failed to create vehicle: %w", err)
		}
		return adjustCounter(tx, v.TenantID, "current_vehicles", +1)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to create vehicle", "tenant_id", v.TenantID, "plate", v.PlateNumber, "error", err)
		}
		return err
	}

	v.ID = model.ID
	r.logger.Infow("vehicle created", "id", model.ID, "tenant_id", model.TenantID, "plate", model.PlateNumber)
	return nil
}

func (r *VehicleRepositoryImpl) Update(ctx context.Context, v *fleet.Vehicle) error {
	result := r.db.WithContext(ctx).Model(&models.VehicleModel{}).
		Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"description":         v.Description,
			"chassis_number":      v.ChassisNumber,
			"engine_number":       v.EngineNumber,
			"plate_number":        v.PlateNumber,
			"vehicle_type_id":     v.VehicleTypeID,
			"brand_id":            v.BrandID,
			"model_id":            v.ModelID,
			"fuel_type_id":        v.FuelTypeID,
			"price_per_day_cents": v.PricePerDayCents,
			"image_url":           v.ImageURL,
			"available":           v.Available,
			"active":              v.Active,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("plate or chassis number already registered")
		}
		r.logger.Errorw("failed to update vehicle", "id", v.ID, "error", result.Error)
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("vehicle not found")
	}
	return nil
}

func (r *VehicleRepositoryImpl) GetByID(ctx context.Context, id uint) (*fleet.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicleToDomain(&model), nil
}

// List fetches the tenant's active vehicles and applies the free-text
// search in memory so it stays accent-insensitive.
func (r *VehicleRepositoryImpl) List(ctx context.Context, filter fleet.VehicleFilter) ([]*fleet.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&models.VehicleModel{}).Where("active = ?", true)
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	var rows []models.VehicleModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*fleet.Vehicle, 0, len(rows))
	for i := range rows {
		v := vehicleToDomain(&rows[i])
		if filter.Search != "" && !utils.MatchesSearch(filter.Search, v.Description, v.PlateNumber, v.ChassisNumber) {
			continue
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (r *VehicleRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.VehicleModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("vehicle not found")
			}
			return fmt.Errorf("failed to get vehicle: %w", err)
		}
		if !model.Active {
			return nil
		}

		if err := tx.Model(&models.VehicleModel{}).Where("id = ?", id).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to delete vehicle: %w", err)
		}
		return adjustCounter(tx, model.TenantID, "current_vehicles", -1)
	})
}

// adjustCounter moves one of the tenant_limits current_* columns by delta
// inside the caller's transaction. Tenants without a limits row are left
// alone; the counter floor is zero.
func adjustCounter(tx *gorm.DB, tenantID uint, column string, delta int) error {
	query := tx.Model(&models.LimitsModel{}).Where("tenant_id = ?", tenantID)
	if delta < 0 {
		query = query.Where(column + " > 0")
	}
	if err := query.Update(column, gorm.Expr(column+" + ?", delta)).Error; err != nil {
		return fmt.Errorf("failed to adjust %s counter: %w", column, err)
	}
	return nil
}

func vehicleToModel(v *fleet.Vehicle) *models.VehicleModel {
	return &models.VehicleModel{
		ID:               v.ID,
		TenantID:         v.TenantID,
		Description:      v.Description,
		ChassisNumber:    v.ChassisNumber,
		EngineNumber:     v.EngineNumber,
		PlateNumber:      v.PlateNumber,
		VehicleTypeID:    v.VehicleTypeID,
		BrandID:          v.BrandID,
		ModelID:          v.ModelID,
		FuelTypeID:       v.FuelTypeID,
		PricePerDayCents: v.PricePerDayCents,
		ImageURL:         v.ImageURL,
		Available:        v.Available,
		Active:           v.Active,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func vehicleToDomain(m *models.VehicleModel) *fleet.Vehicle {
	return &fleet.Vehicle{
		ID:               m.ID,
		TenantID:         m.TenantID,
		Description:      m.Description,
		ChassisNumber:    m.ChassisNumber,
		EngineNumber:     m.EngineNumber,
		PlateNumber:      m.PlateNumber,
		VehicleTypeID:    m.VehicleTypeID,
		BrandID:          m.BrandID,
		ModelID:          m.ModelID,
		FuelTypeID:       m.FuelTypeID,
		PricePerDayCents: m.PricePerDayCents,
		ImageURL:         m.ImageURL,
		Available:        m.Available,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
