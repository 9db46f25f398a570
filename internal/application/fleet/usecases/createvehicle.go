package usecases

import (
	"context"

	"rentora/internal/application/fleet/dto"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/subscription"
	"rentora/internal/domain/user"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type CreateVehicleCommand struct {
	Principal        user.Principal
	TenantID         uint
	Description      string
	ChassisNumber    string
	EngineNumber     string
	PlateNumber      string
	VehicleTypeID    uint
	BrandID          uint
	ModelID          uint
	FuelTypeID       uint
	PricePerDayCents int64
	ImageURL         string
}

// CreateVehicleUseCase registers a vehicle after checking the tenant's
// plan cap. The superadmin bypasses the cap.
type CreateVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	limitsRepo  subscription.LimitsRepository
	logger      logger.Interface
}

func NewCreateVehicleUseCase(vehicleRepo fleet.VehicleRepository, limitsRepo subscription.LimitsRepository, logger logger.Interface) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{vehicleRepo: vehicleRepo, limitsRepo: limitsRepo, logger: logger}
}

func (uc *CreateVehicleUseCase) Execute(ctx context.Context, cmd CreateVehicleCommand) (*dto.VehicleDTO, error) {
	if !cmd.Principal.IsSuperadmin() {
		limits, err := uc.limitsRepo.GetByTenant(ctx, cmd.TenantID)
		if err != nil {
			return nil, err
		}
		if !limits.CanAddVehicle() {
			return nil, errors.NewLimitReachedError("límite de vehículos del plan alcanzado")
		}
	}

	v, err := fleet.NewVehicle(cmd.TenantID, cmd.Description, cmd.ChassisNumber, cmd.EngineNumber,
		cmd.PlateNumber, cmd.VehicleTypeID, cmd.BrandID, cmd.ModelID, cmd.FuelTypeID, cmd.PricePerDayCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	v.ImageURL = cmd.ImageURL

	if err := uc.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	uc.logger.Infow("vehicle registered", "vehicle_id", v.ID, "tenant_id", v.TenantID)
	return dto.FromVehicle(v), nil
}
