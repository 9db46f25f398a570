package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rentora/internal/domain/subscription"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// PlanRepositoryImpl implements the subscription.PlanRepository interface.
type PlanRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) subscription.PlanRepository {
	return &PlanRepositoryImpl{db: db, logger: logger}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *subscription.Plan) error {
	model, err := planToModel(p)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("plan name already in use")
		}
		r.logger.Errorw("failed to create plan", "name", p.Name, "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	p.ID = model.ID
	r.logger.Infow("plan created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *subscription.Plan) error {
	features, err := featuresToJSON(p.Features)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":            p.Name,
			"description":     p.Description,
			"price_usd_cents": p.PriceUSDCents,
			"price_dop_cents": p.PriceDOPCents,
			"vehicle_limit":   p.VehicleLimit,
			"client_limit":    p.ClientLimit,
			"employee_limit":  p.EmployeeLimit,
			"features":        features,
			"is_active":       p.IsActive,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("plan name already in use")
		}
		r.logger.Errorw("failed to update plan", "id", p.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("plan not found")
	}
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("plan not found")
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return planToDomain(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]*subscription.Plan, error) {
	query := r.db.WithContext(ctx).Model(&models.PlanModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []models.PlanModel
	if err := query.Order("price_usd_cents, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]*subscription.Plan, 0, len(rows))
	for i := range rows {
		p, err := planToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func featuresToJSON(features []string) (datatypes.JSON, error) {
	if features == nil {
		features = []string{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan features: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func planToModel(p *subscription.Plan) (*models.PlanModel, error) {
	features, err := featuresToJSON(p.Features)
	if err != nil {
		return nil, err
	}
	return &models.PlanModel{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PriceUSDCents: p.PriceUSDCents,
		PriceDOPCents: p.PriceDOPCents,
		VehicleLimit:  p.VehicleLimit,
		ClientLimit:   p.ClientLimit,
		EmployeeLimit: p.EmployeeLimit,
		Features:      features,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func planToDomain(m *models.PlanModel) (*subscription.Plan, error) {
	var features []string
	if len(m.Features) > 0 {
		if err := json.Unmarshal(m.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to decode plan features: %w", err)
		}
	}
	return &subscription.Plan{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		PriceUSDCents: m.PriceUSDCents,
		PriceDOPCents: m.PriceDOPCents,
		VehicleLimit:  m.VehicleLimit,
		ClientLimit:   m.ClientLimit,
		EmployeeLimit: m.EmployeeLimit,
		Features:      features,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
