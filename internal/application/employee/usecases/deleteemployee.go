package usecases

import (
	"context"

	"rentora/internal/domain/employee"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type DeleteEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewDeleteEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *DeleteEmployeeUseCase {
	return &DeleteEmployeeUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *DeleteEmployeeUseCase) Execute(ctx context.Context, id, tenantID uint) error {
	e, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenantID != 0 && e.TenantID != tenantID {
		return errors.NewNotFoundError("employee not found")
	}

	if err := uc.employeeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.logger.Infow("employee removed", "employee_id", id, "tenant_id", e.TenantID)
	return nil
}
