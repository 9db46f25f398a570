package usecases

import (
	"context"

	"rentora/internal/application/subscription/dto"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subRepo  subscription.SubscriptionRepository
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewGetSubscriptionUseCase(subRepo subscription.SubscriptionRepository, planRepo subscription.PlanRepository, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{subRepo: subRepo, planRepo: planRepo, logger: logger}
}

// Execute returns the tenant's active subscription with its plan name, or
// (nil, nil) when the tenant has never subscribed.
func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, tenantID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subRepo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	out := dto.FromSubscription(sub)
	if plan, err := uc.planRepo.GetByID(ctx, sub.PlanID); err == nil {
		out.PlanName = plan.Name
	}
	return out, nil
}
