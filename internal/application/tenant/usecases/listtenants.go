package usecases

import (
	"context"

	"rentora/internal/application/tenant/dto"
	"rentora/internal/domain/tenant"
	"rentora/internal/shared/logger"
)

type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context) ([]*dto.TenantDTO, error) {
	tenants, err := uc.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TenantDTO, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, dto.FromTenant(t))
	}
	return out, nil
}
