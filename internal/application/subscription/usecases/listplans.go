package usecases

import (
	"context"

	"rentora/internal/application/subscription/dto"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/logger"
)

type ListPlansUseCase struct {
	planRepo subscription.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo subscription.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

// Execute lists plans ordered by USD price. Non-superadmins only see the
// active catalog.
func (uc *ListPlansUseCase) Execute(ctx context.Context, activeOnly bool) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.FromPlan(p))
	}
	return out, nil
}
