package usecases

import (
	"context"

	"rentora/internal/application/inspection/dto"
	"rentora/internal/domain/inspection"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type GetInspectionUseCase struct {
	inspectionRepo inspection.Repository
	logger         logger.Interface
}

func NewGetInspectionUseCase(inspectionRepo inspection.Repository, logger logger.Interface) *GetInspectionUseCase {
	return &GetInspectionUseCase{inspectionRepo: inspectionRepo, logger: logger}
}

func (uc *GetInspectionUseCase) Execute(ctx context.Context, id, tenantID uint) (*dto.InspectionDTO, error) {
	i, err := uc.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenantID != 0 && i.TenantID != tenantID {
		return nil, errors.NewNotFoundError("inspection not found")
	}
	return dto.FromInspection(i), nil
}
