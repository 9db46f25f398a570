package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rentora/internal/domain/employee"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

// EmployeeRepositoryImpl implements employee.Repository. Create and
// SoftDelete maintain the tenant's employee counter transactionally.
type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) employee.Repository {
	return &EmployeeRepositoryImpl{db: db, logger: logger}
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	model := employeeToModel(e)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return adjustCounter(tx, e.TenantID, "current_employees", +1)
	})
	if err != nil {
		r.logger.Errorw("failed to create employee", "tenant_id", e.TenantID, "error", err)
		return err
	}

	e.ID = model.ID
	r.logger.Infow("employee created", "id", model.ID, "tenant_id", model.TenantID)
	return nil
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	result := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"name":               e.Name,
			"cedula":             e.Cedula,
			"work_shift":         string(e.WorkShift),
			"commission_percent": e.CommissionPercent,
			"hire_date":          e.HireDate,
			"phone":              e.Phone,
			"address":            e.Address,
			"active":             e.Active,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update employee", "id", e.ID, "error", result.Error)
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("employee not found")
	}
	return nil
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employeeToDomain(&model), nil
}

func (r *EmployeeRepositoryImpl) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, error) {
	query := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Where("active = ?", true)
	if filter.TenantID != 0 {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}

	var rows []models.EmployeeModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*employee.Employee, 0, len(rows))
	for i := range rows {
		e := employeeToDomain(&rows[i])
		if filter.Search != "" && !utils.MatchesSearch(filter.Search, e.Name, e.Cedula) {
			continue
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *EmployeeRepositoryImpl) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.EmployeeModel
		if err := tx.First(&model, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewNotFoundError("employee not found")
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !model.Active {
			return nil
		}

		if err := tx.Model(&models.EmployeeModel{}).Where("id = ?", id).
			Update("active", false).Error; err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return adjustCounter(tx, model.TenantID, "current_employees", -1)
	})
}

func employeeToModel(e *employee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:                e.ID,
		TenantID:          e.TenantID,
		Name:              e.Name,
		Cedula:            e.Cedula,
		WorkShift:         string(e.WorkShift),
		CommissionPercent: e.CommissionPercent,
		HireDate:          e.HireDate,
		Phone:             e.Phone,
		Address:           e.Address,
		Active:            e.Active,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func employeeToDomain(m *models.EmployeeModel) *employee.Employee {
	return &employee.Employee{
		ID:                m.ID,
		TenantID:          m.TenantID,
		Name:              m.Name,
		Cedula:            m.Cedula,
		WorkShift:         employee.WorkShift(m.WorkShift),
		CommissionPercent: m.CommissionPercent,
		HireDate:          m.HireDate,
		Phone:             m.Phone,
		Address:           m.Address,
		Active:            m.Active,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
