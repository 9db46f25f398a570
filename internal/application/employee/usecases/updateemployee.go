package usecases

import (
	"context"
	"strings"

	"rentora/internal/application/employee/dto"
	"rentora/internal/domain/employee"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/validation"
)

type UpdateEmployeeCommand struct {
	ID                uint
	TenantID          uint
	Name              *string
	Cedula            *string
	WorkShift         *string
	CommissionPercent *float64
	HireDate          *string
	Phone             *string
	Address           *string
}

type UpdateEmployeeUseCase struct {
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewUpdateEmployeeUseCase(employeeRepo employee.Repository, logger logger.Interface) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{employeeRepo: employeeRepo, logger: logger}
}

func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*dto.EmployeeDTO, error) {
	e, err := uc.employeeRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.TenantID != 0 && e.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("employee not found")
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("el nombre es requerido")
		}
		e.Name = name
	}
	if cmd.Cedula != nil {
		if msg := validation.Message("cedula", *cmd.Cedula); msg != "" {
			return nil, errors.NewValidationError(msg)
		}
		e.Cedula = validation.FormatCedula(*cmd.Cedula)
	}
	if cmd.WorkShift != nil {
		shift := employee.WorkShift(*cmd.WorkShift)
		if !shift.IsValid() {
			return nil, errors.NewValidationError("tanda laboral inválida")
		}
		e.WorkShift = shift
	}
	if cmd.CommissionPercent != nil {
		if *cmd.CommissionPercent < 0 || *cmd.CommissionPercent > 100 {
			return nil, errors.NewValidationError("el porciento de comisión debe estar entre 0 y 100")
		}
		e.CommissionPercent = *cmd.CommissionPercent
	}
	if cmd.HireDate != nil {
		parsed, err := biztime.ParseDate(*cmd.HireDate)
		if err != nil {
			return nil, errors.NewValidationError("fecha de ingreso inválida, use YYYY-MM-DD")
		}
		e.HireDate = parsed
	}
	if cmd.Phone != nil {
		e.Phone = *cmd.Phone
	}
	if cmd.Address != nil {
		e.Address = *cmd.Address
	}

	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	uc.logger.Infow("employee updated", "employee_id", e.ID)
	return dto.FromEmployee(e), nil
}
