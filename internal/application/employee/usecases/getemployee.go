package usecases

import (
	"context"

	"rentora/internal/application/employee/dto"
	"rentora/internal/domain/employee"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type GetEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewGetEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *GetEmployeeUseCase {
	return &GetEmployeeUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *GetEmployeeUseCase) Execute(ctx context.Context, id, tenantID uint) (*dto.EmployeeDTO, error) {
	e, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenantID != 0 && e.TenantID != tenantID {
		return nil, errors.NewNotFoundError("employee not found")
	}
	return dto.FromEmployee(e), nil
}
