package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// MembershipRepositoryImpl implements user.MembershipRepository.
type MembershipRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewMembershipRepository(db *gorm.DB, logger logger.Interface) user.MembershipRepository {
	return &MembershipRepositoryImpl{db: db, logger: logger}
}

func (r *MembershipRepositoryImpl) Create(ctx context.Context, m *user.Membership) error {
	model := membershipToModel(m)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("user already belongs to this tenant")
		}
		r.logger.Errorw("failed to create membership", "tenant_id", m.TenantID, "user_id", m.UserID, "error", err)
		return fmt.Errorf("failed to create membership: %w", err)
	}

	m.ID = model.ID
	r.logger.Infow("membership created", "id", model.ID, "tenant_id", model.TenantID, "user_id", model.UserID, "role", model.Role)
	return nil
}

func (r *MembershipRepositoryImpl) Update(ctx context.Context, m *user.Membership) error {
	result := r.db.WithContext(ctx).Model(&models.MembershipModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"role":      string(m.Role),
			"is_active": m.IsActive,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update membership", "id", m.ID, "error", result.Error)
		return fmt.Errorf("failed to update membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership not found")
	}
	return nil
}

// GetActiveByUser returns (nil, nil) when the user has no active
// membership.
func (r *MembershipRepositoryImpl) GetActiveByUser(ctx context.Context, userID uint) (*user.Membership, error) {
	var model models.MembershipModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return membershipToDomain(&model), nil
}

func (r *MembershipRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*user.Membership, error) {
	var rows []models.MembershipModel
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	memberships := make([]*user.Membership, 0, len(rows))
	for i := range rows {
		memberships = append(memberships, membershipToDomain(&rows[i]))
	}
	return memberships, nil
}

func membershipToModel(m *user.Membership) *models.MembershipModel {
	return &models.MembershipModel{
		ID:        m.ID,
		TenantID:  m.TenantID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func membershipToDomain(m *models.MembershipModel) *user.Membership {
	return &user.Membership{
		ID:        m.ID,
		TenantID:  m.TenantID,
		UserID:    m.UserID,
		Role:      user.Role(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
