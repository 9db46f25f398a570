package usecases

import (
	"context"

	"rentora/internal/domain/fleet"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// DeleteVehicleUseCase soft-deletes a vehicle and releases one slot of
// the tenant's vehicle cap.
type DeleteVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewDeleteVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{vehicleRepo: vehicleRepo, logger: logger}
}

func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, id, tenantID uint) error {
	v, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenantID != 0 && v.TenantID != tenantID {
		return errors.NewNotFoundError("vehicle not found")
	}
	if !v.Available {
		return errors.NewConflictError("el vehículo tiene una renta abierta")
	}

	if err := uc.vehicleRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	uc.logger.Infow("vehicle removed", "vehicle_id", id, "tenant_id", v.TenantID)
	return nil
}
