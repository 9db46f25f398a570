package usecases

import (
	"context"

	"rentora/internal/application/fleet/dto"
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type GetVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewGetVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *GetVehicleUseCase {
	return &GetVehicleUseCase{vehicleRepo: vehicleRepo, logger: logger}
}

// Execute fetches one vehicle. tenantID zero skips the scope check
// (superadmin).
func (uc *GetVehicleUseCase) Execute(ctx context.Context, id, tenantID uint) (*dto.VehicleDTO, error) {
	v, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenantID != 0 && v.TenantID != tenantID {
		return nil, errors.NewNotFoundError("vehicle not found")
	}
	return dto.FromVehicle(v), nil
}
