package usecases

import (
	"context"

	"rentora/internal/application/employee/dto"
	"rentora/internal/domain/employee"
	"rentora/internal/shared/logger"
)

type ListEmployeesUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewListEmployeesUseCase(employeeRepo employee.Repository, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context, filter employee.Filter) ([]*dto.EmployeeDTO, error) {
	employees, err := uc.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.FromEmployee(e))
	}
	return out, nil
}
