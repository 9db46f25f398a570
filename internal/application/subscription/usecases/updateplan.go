package usecases

import (
	"context"
	"strings"

	"rentora/internal/application/subscription/dto"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type UpdatePlanCommand struct {
	ID            uint
	Name          *string
	Description   *string
	PriceUSDCents *int64
	PriceDOPCents *int64
	VehicleLimit  *int
	ClientLimit   *int
	EmployeeLimit *int
	LimitsSet     bool
	Features      []string
	IsActive      *bool
}

// UpdatePlanUseCase edits the global plan catalog. Cap changes do not
// rewrite tenant_limits rows of already-subscribed tenants; those update
// on the next plan assignment.
type UpdatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, errors.NewValidationError("el nombre del plan es requerido")
		}
		plan.Name = name
	}
	if cmd.Description != nil {
		plan.Description = *cmd.Description
	}
	if cmd.PriceUSDCents != nil {
		if *cmd.PriceUSDCents < 0 {
			return nil, errors.NewValidationError("el precio no puede ser negativo")
		}
		plan.PriceUSDCents = *cmd.PriceUSDCents
	}
	if cmd.PriceDOPCents != nil {
		if *cmd.PriceDOPCents < 0 {
			return nil, errors.NewValidationError("el precio no puede ser negativo")
		}
		plan.PriceDOPCents = *cmd.PriceDOPCents
	}
	if cmd.LimitsSet {
		if err := plan.SetLimits(cmd.VehicleLimit, cmd.ClientLimit, cmd.EmployeeLimit); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Features != nil {
		plan.Features = cmd.Features
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	uc.logger.Infow("plan updated", "plan_id", plan.ID)
	return dto.FromPlan(plan), nil
}
