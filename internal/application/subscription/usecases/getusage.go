package usecases

import (
	"context"

	"rentora/internal/application/subscription/dto"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/logger"
)

// GetUsageUseCase returns the three usage cards. A tenant without a
// limits row reads as all zeroes, matching the settings screen's
// behavior.
type GetUsageUseCase struct {
	limits subscription.LimitsRepository
	logger logger.Interface
}

func NewGetUsageUseCase(limits subscription.LimitsRepository, logger logger.Interface) *GetUsageUseCase {
	return &GetUsageUseCase{limits: limits, logger: logger}
}

func (uc *GetUsageUseCase) Execute(ctx context.Context, tenantID uint) (*dto.UsageDTO, error) {
	l, err := uc.limits.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &dto.UsageDTO{
		Vehicles:  l.VehicleUsage(),
		Clients:   l.ClientUsage(),
		Employees: l.EmployeeUsage(),
	}, nil
}
