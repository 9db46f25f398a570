package usecases

import (
	"context"
	"strings"

	"rentora/internal/application/fleet/dto"
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type UpdateVehicleCommand struct {
	ID               uint
	TenantID         uint
	Description      *string
	ChassisNumber    *string
	EngineNumber     *string
	PlateNumber      *string
	VehicleTypeID    *uint
	BrandID          *uint
	ModelID          *uint
	FuelTypeID       *uint
	PricePerDayCents *int64
	ImageURL         *string
}

type UpdateVehicleUseCase struct {
	vehicleRepo fleet.VehicleRepository
	logger      logger.Interface
}

func NewUpdateVehicleUseCase(vehicleRepo fleet.VehicleRepository, logger logger.Interface) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{vehicleRepo: vehicleRepo, logger: logger}
}

func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, cmd UpdateVehicleCommand) (*dto.VehicleDTO, error) {
	v, err := uc.vehicleRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if cmd.TenantID != 0 && v.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("vehicle not found")
	}

	if cmd.Description != nil {
		desc := strings.TrimSpace(*cmd.Description)
		if desc == "" {
			return nil, errors.NewValidationError("la descripción es requerida")
		}
		v.Description = desc
	}
	if cmd.ChassisNumber != nil {
		v.ChassisNumber = strings.ToUpper(strings.TrimSpace(*cmd.ChassisNumber))
	}
	if cmd.EngineNumber != nil {
		v.EngineNumber = strings.ToUpper(strings.TrimSpace(*cmd.EngineNumber))
	}
	if cmd.PlateNumber != nil {
		v.PlateNumber = strings.ToUpper(strings.TrimSpace(*cmd.PlateNumber))
	}
	if cmd.VehicleTypeID != nil {
		v.VehicleTypeID = *cmd.VehicleTypeID
	}
	if cmd.BrandID != nil {
		v.BrandID = *cmd.BrandID
	}
	if cmd.ModelID != nil {
		v.ModelID = *cmd.ModelID
	}
	if cmd.FuelTypeID != nil {
		v.FuelTypeID = *cmd.FuelTypeID
	}
	if cmd.PricePerDayCents != nil {
		if *cmd.PricePerDayCents <= 0 {
			return nil, errors.NewValidationError("el precio por día debe ser positivo")
		}
		v.PricePerDayCents = *cmd.PricePerDayCents
	}
	if cmd.ImageURL != nil {
		v.ImageURL = *cmd.ImageURL
	}

	if err := uc.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	uc.logger.Infow("vehicle updated", "vehicle_id", v.ID)
	return dto.FromVehicle(v), nil
}
