package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/inspection"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// InspectionRepositoryImpl implements inspection.Repository. Inspections
// are append-only; there is no update path.
type InspectionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewInspectionRepository(db *gorm.DB, logger logger.Interface) inspection.Repository {
	return &InspectionRepositoryImpl{db: db, logger: logger}
}

func (r *InspectionRepositoryImpl) Create(ctx context.Context, i *inspection.Inspection) error {
	model := inspectionToModel(i)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create inspection", "tenant_id", i.TenantID, "vehicle_id", i.VehicleID, "error", err)
		return fmt.Errorf("failed to create inspection: %w", err)
	}

	i.ID = model.ID
	r.logger.Infow("inspection created", "id", model.ID, "tenant_id", model.TenantID, "vehicle_id", model.VehicleID)
	return nil
}

func (r *InspectionRepositoryImpl) GetByID(ctx context.Context, id uint) (*inspection.Inspection, error) {
	var model models.InspectionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inspection not found")
		}
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}
	return inspectionToDomain(&model), nil
}

func (r *InspectionRepositoryImpl) List(ctx context.Context, filter inspection.Filter) ([]*inspection.Inspection, error) {
	query := r.db.WithContext(ctx).Model(&models.InspectionModel{}).Where("active = ?", true)
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.VehicleID != 0 {
		query = query.Where("vehicle_id = ?", filter.VehicleID)
	}

	var rows []models.InspectionModel
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	inspections := make([]*inspection.Inspection, 0, len(rows))
	for i := range rows {
		inspections = append(inspections, inspectionToDomain(&rows[i]))
	}
	return inspections, nil
}

func (r *InspectionRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.InspectionModel{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		r.logger.Errorw("failed to delete inspection", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete inspection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("inspection not found")
	}
	return nil
}

func inspectionToModel(i *inspection.Inspection) *models.InspectionModel {
	return &models.InspectionModel{
		ID:             i.ID,
		TenantID:       i.TenantID,
		VehicleID:      i.VehicleID,
		ClientID:       i.ClientID,
		EmployeeID:     i.EmployeeID,
		HasScratches:   i.HasScratches,
		FuelLevel:      string(i.FuelLevel),
		HasSpareTire:   i.HasSpareTire,
		HasJack:        i.HasJack,
		HasGlassDamage: i.HasGlassDamage,
		TireFrontLeft:  i.Tires.FrontLeft,
		TireFrontRight: i.Tires.FrontRight,
		TireRearLeft:   i.Tires.RearLeft,
		TireRearRight:  i.Tires.RearRight,
		TireSpare:      i.Tires.Spare,
		Notes:          i.Notes,
		InspectedAt:    i.InspectedAt,
		Active:         i.Active,
		CreatedAt:      i.CreatedAt,
	}
}

func inspectionToDomain(m *models.InspectionModel) *inspection.Inspection {
	return &inspection.Inspection{
		ID:             m.ID,
		TenantID:       m.TenantID,
		VehicleID:      m.VehicleID,
		ClientID:       m.ClientID,
		EmployeeID:     m.EmployeeID,
		HasScratches:   m.HasScratches,
		FuelLevel:      inspection.FuelLevel(m.FuelLevel),
		HasSpareTire:   m.HasSpareTire,
		HasJack:        m.HasJack,
		HasGlassDamage: m.HasGlassDamage,
		Tires: inspection.TireState{
			FrontLeft:  m.TireFrontLeft,
			FrontRight: m.TireFrontRight,
			RearLeft:   m.TireRearLeft,
			RearRight:  m.TireRearRight,
			Spare:      m.TireSpare,
		},
		Notes:       m.Notes,
		InspectedAt: m.InspectedAt,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
	}
}
