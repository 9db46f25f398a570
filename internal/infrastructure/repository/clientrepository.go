package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/client"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
	"rentora/internal/shared/validation"
)

// ClientRepositoryImpl implements client.Repository. Create and
// SoftDelete maintain the tenant's client counter transactionally.
type ClientRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepositoryImpl{db: db, logger: logger}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, c *client.Client) error {
	model := clientToModel(c)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("cedula already registered for this company")
			}
			return fmt.Errorf("failed to create client: %w", err)
		}
		return adjustCounter(tx, c.TenantID, "current_clients", +1)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to create client", "tenant_id", c.TenantID, "error", err)
		}
		return err
	}

	c.ID = model.ID
	r.logger.Infow("client created", "id", model.ID, "tenant_id", model.TenantID)
	return nil
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, c *client.Client) error {
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":               c.Name,
			"cedula":             c.Cedula,
			"credit_card_number": c.CreditCardNumber,
			"credit_limit_cents": c.CreditLimitCents,
			"person_type":        string(c.PersonType),
			"phone":              c.Phone,
			"address":            c.Address,
			"active":             c.Active,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("cedula already registered for this company")
		}
		r.logger.Errorw("failed to update client", "id", c.ID, "error", result.Error)
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("client not found")
	}
	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("client not found")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return clientToDomain(&model), nil
}

// ExistsByCedula compares against the stored formatted form.
func (r *ClientRepositoryImpl) ExistsByCedula(ctx context.Context, tenantID uint, cedula string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("tenant_id = ? AND cedula = ? AND active = ?", tenantID, validation.FormatCedula(cedula), true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check cedula: %w", err)
	}
	return count > 0, nil
}

func (r *ClientRepositoryImpl) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("active = ?", true)
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}

	var rows []models.ClientModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, 0, len(rows))
	for i := range rows {
		c := clientToDomain(&rows[i])
		if filter.Search != "" && !utils.MatchesSearch(filter.Search, c.Name, c.Cedula) {
			continue
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func (r *ClientRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ClientModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("client not found")
			}
			return fmt.Errorf("failed to get client: %w", err)
		}
		if !model.Active {
			return nil
		}

		if err := tx.Model(&models.ClientModel{}).Where("id = ?", id).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
		return adjustCounter(tx, model.TenantID, "current_clients", -1)
	})
}

func clientToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:               c.ID,
		TenantID:         c.TenantID,
		Name:             c.Name,
		Cedula:           c.Cedula,
		CreditCardNumber: c.CreditCardNumber,
		CreditLimitCents: c.CreditLimitCents,
		PersonType:       string(c.PersonType),
		Phone:            c.Phone,
		Address:          c.Address,
		Active:           c.Active,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func clientToDomain(m *models.ClientModel) *client.Client {
	return &client.Client{
		ID:               m.ID,
		TenantID:         m.TenantID,
		Name:             m.Name,
		Cedula:           m.Cedula,
		CreditCardNumber: m.CreditCardNumber,
		CreditLimitCents: m.CreditLimitCents,
		PersonType:       client.PersonType(m.PersonType),
		Phone:            m.Phone,
		Address:          m.Address,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
