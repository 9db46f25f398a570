package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/subscription"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// LimitsRepositoryImpl implements subscription.LimitsRepository.
type LimitsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLimitsRepository(db *gorm.DB, logger logger.Interface) subscription.LimitsRepository {
	return &LimitsRepositoryImpl{db: db, logger: logger}
}

func (r *LimitsRepositoryImpl) Create(ctx context.Context, l *subscription.Limits) error {
	model := limitsToModel(l)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("tenant already has a limits record")
		}
		r.logger.Errorw("failed to create tenant limits", "tenant_id", l.TenantID, "error", err)
		return fmt.Errorf("failed to create tenant limits: %w", err)
	}

	l.ID = model.ID
	return nil
}

// Update writes the caps only; the current counters are owned by the
// entity repositories' transactions.
func (r *LimitsRepositoryImpl) Update(ctx context.Context, l *subscription.Limits) error {
	result := r.db.WithContext(ctx).Model(&models.LimitsModel{}).
		Where("tenant_id = ?", l.TenantID).
		Updates(map[string]interface{}{
			"max_vehicles":  l.MaxVehicles,
			"max_clients":   l.MaxClients,
			"max_employees": l.MaxEmployees,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update tenant limits", "tenant_id", l.TenantID, "error", result.Error)
		return fmt.Errorf("failed to update tenant limits: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tenant limits not found")
	}
	return nil
}

// GetByTenant returns (nil, nil) when the tenant has no limits row.
func (r *LimitsRepositoryImpl) GetByTenant(ctx context.Context, tenantID uint) (*subscription.Limits, error) {
	var model models.LimitsModel
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant limits: %w", err)
	}
	return limitsToDomain(&model), nil
}

func limitsToModel(l *subscription.Limits) *models.LimitsModel {
	return &models.LimitsModel{
		ID:               l.ID,
		TenantID:         l.TenantID,
		CurrentVehicles:  l.CurrentVehicles,
		CurrentClients:   l.CurrentClients,
		CurrentEmployees: l.CurrentEmployees,
		MaxVehicles:      l.MaxVehicles,
		MaxClients:       l.MaxClients,
		MaxEmployees:     l.MaxEmployees,
		UpdatedAt:        l.UpdatedAt,
	}
}

func limitsToDomain(m *models.LimitsModel) *subscription.Limits {
	return &subscription.Limits{
		ID:               m.ID,
		TenantID:         m.TenantID,
		CurrentVehicles:  m.CurrentVehicles,
		CurrentClients:   m.CurrentClients,
		CurrentEmployees: m.CurrentEmployees,
		MaxVehicles:      m.MaxVehicles,
		MaxClients:       m.MaxClients,
		MaxEmployees:     m.MaxEmployees,
		UpdatedAt:        m.UpdatedAt,
	}
}
