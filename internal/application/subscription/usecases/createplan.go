package usecases

import (
	"context"

	"rentora/internal/application/subscription/dto"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name          string
	Description   string
	PriceUSDCents int64
	PriceDOPCents int64
	VehicleLimit  *int
	ClientLimit   *int
	EmployeeLimit *int
	Features      []string
}

type CreatePlanUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := subscription.NewPlan(cmd.Name, cmd.Description, cmd.PriceUSDCents, cmd.PriceDOPCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := plan.SetLimits(cmd.VehicleLimit, cmd.ClientLimit, cmd.EmployeeLimit); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	plan.Features = cmd.Features

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	uc.logger.Infow("plan created", "plan_id", plan.ID, "name", plan.Name)
	return dto.FromPlan(plan), nil
}
