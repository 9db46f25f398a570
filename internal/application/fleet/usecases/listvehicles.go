package usecases

import (
	"context"

	"rentora/internal/application/fleet/dto"
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/logger"
)

type ListVehiclesUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewListVehiclesUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{vehicleRepo: vehicleRepo, logger: logger}
}

func (uc *ListVehiclesUseCase) Execute(ctx context.Context, filter fleet.VehicleFilter) ([]*dto.VehicleDTO, error) {
	vehicles, err := uc.vehicleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.VehicleDTO, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, dto.FromVehicle(v))
	}
	return out, nil
}
