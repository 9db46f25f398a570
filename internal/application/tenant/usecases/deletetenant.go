package usecases

import (
	"context"

	"rentora/internal/domain/tenant"
	"rentora/internal/shared/logger"
)

// DeleteTenantUseCase removes a tenant and, through the database's
// cascading foreign keys, all of its data. Superadmin only; the route
// layer enforces that.
type DeleteTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewDeleteTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *DeleteTenantUseCase {
	return &DeleteTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (uc *DeleteTenantUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.tenantRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Infow("tenant removed with all data", "tenant_id", id)
	return nil
}
