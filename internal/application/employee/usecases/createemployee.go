package usecases

import (
	"context"
	"time"

	"rentora/internal/application/employee/dto"
	"rentora/internal/domain/employee"
	"rentora/internal/domain/subscription"
	"rentora/internal/domain/user"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type CreateEmployeeCommand struct {
	Principal         user.Principal
	TenantID          uint
	Name              string
	Cedula            string
	WorkShift         string
	CommissionPercent float64
	HireDate          string
	Phone             string
	Address           string
}

type CreateEmployeeUseCase struct {
	employeeRepo employee.Repository
	limitsRepo   subscription.LimitsRepository
	logger       logger.Interface
}

func NewCreateEmployeeUseCase(employeeRepo employee.Repository, limitsRepo subscription.LimitsRepository, logger logger.Interface) *CreateEmployeeUseCase {
	return &CreateEmployeeUseCase{employeeRepo: employeeRepo, limitsRepo: limitsRepo, logger: logger}
}

func (uc *CreateEmployeeUseCase) Execute(ctx context.Context, cmd CreateEmployeeCommand) (*dto.EmployeeDTO, error) {
	if msg := validation.Message("cedula", cmd.Cedula); msg != "" {
		return nil, errors.NewValidationError(msg)
	}

	hireDate := biztime.StartOfDayUTC(time.Now())
	if cmd.HireDate != "" {
		parsed, err := biztime.ParseDate(cmd.HireDate)
		if err != nil {
			return nil, errors.NewValidationError("fecha de ingreso inválida, use YYYY-MM-DD")
		}
		hireDate = parsed
	}

	if !cmd.Principal.IsSuperadmin() {
		limits, err := uc.limitsRepo.GetByTenant(ctx, cmd.TenantID)
		if err != nil {
			return nil, err
		}
		if !limits.CanAddEmployee() {
			return nil, errors.NewLimitReachedError("límite de empleados del plan alcanzado")
		}
	}

	e, err := employee.NewEmployee(cmd.TenantID, cmd.Name, cmd.Cedula, employee.WorkShift(cmd.WorkShift), cmd.CommissionPercent, hireDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	e.Phone = cmd.Phone
	e.Address = cmd.Address

	if err := uc.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.logger.Infow("employee registered", "employee_id", e.ID, "tenant_id", e.TenantID)
	return dto.FromEmployee(e), nil
}
