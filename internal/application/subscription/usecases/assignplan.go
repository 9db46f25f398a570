package usecases

import (
	"context"
	"time"

	"rentora/internal/application/subscription/dto"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type AssignPlanCommand struct {
	TenantID  uint
	PlanID    uint
	EndsAt    *time.Time
	AutoRenew bool
}

// AssignPlanUseCase subscribes a tenant to a plan: the previous active
// subscription is deactivated, a new one starts now, and the plan's caps
// are copied onto the tenant's limits row. Current counters are kept, so
// a downgrade below current usage blocks further additions without
// deleting anything.
type AssignPlanUseCase struct {
	planRepo subscription.PlanRepository
	subRepo  subscription.SubscriptionRepository
	limits   subscription.LimitsRepository
	logger   logger.Interface
}

func NewAssignPlanUseCase(
	planRepo subscription.PlanRepository,
	subRepo subscription.SubscriptionRepository,
	limits subscription.LimitsRepository,
	logger logger.Interface,
) *AssignPlanUseCase {
	return &AssignPlanUseCase{planRepo: planRepo, subRepo: subRepo, limits: limits, logger: logger}
}

func (uc *AssignPlanUseCase) Execute(ctx context.Context, cmd AssignPlanCommand) (*dto.SubscriptionDTO, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, errors.NewValidationError("el plan no está disponible")
	}

	if err := uc.subRepo.DeactivateActiveByTenant(ctx, cmd.TenantID); err != nil {
		return nil, err
	}

	sub, err := subscription.NewSubscription(cmd.TenantID, cmd.PlanID, time.Now().UTC(), cmd.EndsAt, cmd.AutoRenew)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	limits, err := uc.limits.GetByTenant(ctx, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	if limits == nil {
		limits = &subscription.Limits{TenantID: cmd.TenantID}
		limits.ApplyPlan(plan)
		if err := uc.limits.Create(ctx, limits); err != nil {
			return nil, err
		}
	} else {
		limits.ApplyPlan(plan)
		if err := uc.limits.Update(ctx, limits); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("plan assigned", "tenant_id", cmd.TenantID, "plan_id", cmd.PlanID, "subscription_id", sub.ID)

	out := dto.FromSubscription(sub)
	out.PlanName = plan.Name
	return out, nil
}
