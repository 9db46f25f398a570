package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/tenant"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// TenantRepositoryImpl implements the tenant.Repository interface.
type TenantRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepositoryImpl{db: db, logger: logger}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, t *tenant.Tenant) error {
	model := tenantToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("tenant slug already in use")
		}
		r.logger.Errorw("failed to create tenant", "slug", t.Slug, "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	t.ID = model.ID
	r.logger.Infow("tenant created", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, t *tenant.Tenant) error {
	result := r.db.WithContext(ctx).Model(&models.TenantModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"name":      t.Name,
			"email":     t.Email,
			"phone":     t.Phone,
			"address":   t.Address,
			"logo_url":  t.LogoURL,
			"is_active": t.IsActive,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update tenant", "id", t.ID, "error", result.Error)
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tenant not found")
	}
	return nil
}

// Delete removes the tenant row permanently. Dependent rows are removed
// by the database's ON DELETE CASCADE foreign keys.
func (r *TenantRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TenantModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete tenant", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tenant not found")
	}

	r.logger.Infow("tenant deleted", "id", id)
	return nil
}

func (r *TenantRepositoryImpl) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenantToDomain(&model), nil
}

func (r *TenantRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}
	return tenantToDomain(&model), nil
}

func (r *TenantRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TenantModel{}).
		Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tenant slug: %w", err)
	}
	return count > 0, nil
}

func (r *TenantRepositoryImpl) List(ctx context.Context) ([]*tenant.Tenant, error) {
	var rows []models.TenantModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	tenants := make([]*tenant.Tenant, 0, len(rows))
	for i := range rows {
		tenants = append(tenants, tenantToDomain(&rows[i]))
	}
	return tenants, nil
}

func tenantToModel(t *tenant.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Email:     t.Email,
		Phone:     t.Phone,
		Address:   t.Address,
		LogoURL:   t.LogoURL,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tenantToDomain(m *models.TenantModel) *tenant.Tenant {
	return &tenant.Tenant{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		LogoURL:   m.LogoURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
