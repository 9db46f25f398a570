package usecases

import (
	"context"

	"rentora/internal/application/inspection/dto"
	"rentora/internal/domain/inspection"
	"rentora/internal/shared/logger"
)

type ListInspectionsUseCase struct {
	inspectionRepo inspection.Repository
	logger         logger.Interface
}

func NewListInspectionsUseCase(inspectionRepo inspection.Repository, logger logger.Interface) *ListInspectionsUseCase {
	return &ListInspectionsUseCase{inspectionRepo: inspectionRepo, logger: logger}
}

func (uc *ListInspectionsUseCase) Execute(ctx context.Context, filter inspection.Filter) ([]*dto.InspectionDTO, error) {
	inspections, err := uc.inspectionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.InspectionDTO, 0, len(inspections))
	for _, i := range inspections {
		out = append(out, dto.FromInspection(i))
	}
	return out, nil
}
