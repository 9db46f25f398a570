package usecases

import (
	"context"

	"rentora/internal/domain/inspection"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type DeleteInspectionUseCase struct {
	inspectionRepo inspection.Repository
	logger         logger.Interface
}

func NewDeleteInspectionUseCase(inspectionRepo inspection.Repository, logger logger.Interface) *DeleteInspectionUseCase {
	return &DeleteInspectionUseCase{inspectionRepo: inspectionRepo, logger: logger}
}

func (uc *DeleteInspectionUseCase) Execute(ctx context.Context, id, tenantID uint) error {
	i, err := uc.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenantID != 0 && i.TenantID != tenantID {
		return errors.NewNotFoundError("inspection not found")
	}

	if err := uc.inspectionRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.logger.Infow("inspection removed", "inspection_id", id, "tenant_id", i.TenantID)
	return nil
}
