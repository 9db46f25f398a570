package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentora/internal/domain/subscription"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// SubscriptionRepositoryImpl implements subscription.SubscriptionRepository.
type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db, logger: logger}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model := subscriptionToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "tenant_id", s.TenantID, "plan_id", s.PlanID, "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	s.ID = model.ID
	r.logger.Infow("subscription created", "id", model.ID, "tenant_id", model.TenantID, "plan_id", model.PlanID)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"status":     string(s.Status),
			"ends_at":    s.EndsAt,
			"auto_renew": s.AutoRenew,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", s.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("subscription not found")
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return subscriptionToDomain(&model), nil
}

func (r *SubscriptionRepositoryImpl) GetActiveByTenant(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status = ?", tenantID, string(subscription.StatusActive)).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant has no active subscription")
		}
		return nil, fmt.Errorf("failed to get active subscription: %w", err)
	}
	return subscriptionToDomain(&model), nil
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context) ([]*subscription.Subscription, error) {
	var rows []models.SubscriptionModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(rows))
	for i := range rows {
		subs = append(subs, subscriptionToDomain(&rows[i]))
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) ListExpirable(ctx context.Context) ([]*subscription.Subscription, error) {
	var rows []models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND ends_at IS NOT NULL AND ends_at <= ?", string(subscription.StatusActive), time.Now().UTC()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expirable subscriptions: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(rows))
	for i := range rows {
		subs = append(subs, subscriptionToDomain(&rows[i]))
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) DeactivateActiveByTenant(ctx context.Context, tenantID uint) error {
	err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("tenant_id = ? AND status = ?", tenantID, string(subscription.StatusActive)).
		Update("status", string(subscription.StatusInactive)).Error
	if err != nil {
		r.logger.Errorw("failed to deactivate subscriptions", "tenant_id", tenantID, "error", err)
		return fmt.Errorf("failed to deactivate subscriptions: %w", err)
	}
	return nil
}

func subscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:        s.ID,
		TenantID:  s.TenantID,
		PlanID:    s.PlanID,
		Status:    string(s.Status),
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		AutoRenew: s.AutoRenew,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func subscriptionToDomain(m *models.SubscriptionModel) *subscription.Subscription {
	return &subscription.Subscription{
		ID:        m.ID,
		TenantID:  m.TenantID,
		PlanID:    m.PlanID,
		Status:    subscription.Status(m.Status),
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		AutoRenew: m.AutoRenew,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
