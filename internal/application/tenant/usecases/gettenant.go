package usecases

import (
	"context"

	"rentora/internal/application/tenant/dto"
	"rentora/internal/domain/tenant"
	"rentora/internal/shared/logger"
)

type GetTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewGetTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, id uint) (*dto.TenantDTO, error) {
	t, err := uc.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromTenant(t), nil
}
