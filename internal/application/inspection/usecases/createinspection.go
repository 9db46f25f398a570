package usecases

import (
	"context"
	"time"

	"rentora/internal/application/inspection/dto"
	"rentora/internal/domain/client"
	"rentora/internal/domain/employee"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/inspection"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type CreateInspectionCommand struct {
	TenantID       uint
	VehicleID      uint
	ClientID       uint
	EmployeeID     uint
	HasScratches   bool
	FuelLevel      string
	HasSpareTire   bool
	HasJack        bool
	HasGlassDamage bool
	Tires          dto.TireStateDTO
	Notes          string
	InspectedAt    string
}

// CreateInspectionUseCase records a vehicle condition snapshot. The
// vehicle, client and employee must all belong to the tenant; the record
// is immutable afterwards.
type CreateInspectionUseCase struct {
	inspectionRepo inspection.Repository
	vehicleRepo    fleet.VehicleRepository
	clientRepo     client.Repository
	employeeRepo   employee.Repository
	logger         logger.Interface
}

func NewCreateInspectionUseCase(
	inspectionRepo inspection.Repository,
	vehicleRepo fleet.VehicleRepository,
	clientRepo client.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *CreateInspectionUseCase {
	return &CreateInspectionUseCase{
		inspectionRepo: inspectionRepo,
		vehicleRepo:    vehicleRepo,
		clientRepo:     clientRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

func (uc *CreateInspectionUseCase) Execute(ctx context.Context, cmd CreateInspectionCommand) (*dto.InspectionDTO, error) {
	v, err := uc.vehicleRepo.GetByID(ctx, cmd.VehicleID)
	if err != nil {
		return nil, err
	}
	if v.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("vehicle not found")
	}

	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return nil, err
	}
	if c.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("client not found")
	}

	e, err := uc.employeeRepo.GetByID(ctx, cmd.EmployeeID)
	if err != nil {
		return nil, err
	}
	if e.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("employee not found")
	}

	inspectedAt := biztime.StartOfDayUTC(time.Now())
	if cmd.InspectedAt != "" {
		parsed, err := biztime.ParseDate(cmd.InspectedAt)
		if err != nil {
			return nil, errors.NewValidationError("fecha de inspección inválida, use YYYY-MM-DD")
		}
		inspectedAt = parsed
	}

	i, err := inspection.NewInspection(cmd.TenantID, cmd.VehicleID, cmd.ClientID, cmd.EmployeeID, inspection.FuelLevel(cmd.FuelLevel), inspectedAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	i.HasScratches = cmd.HasScratches
	i.HasSpareTire = cmd.HasSpareTire
	i.HasJack = cmd.HasJack
	i.HasGlassDamage = cmd.HasGlassDamage
	i.Tires = inspection.TireState{
		FrontLeft:  cmd.Tires.FrontLeft,
		FrontRight: cmd.Tires.FrontRight,
		RearLeft:   cmd.Tires.RearLeft,
		RearRight:  cmd.Tires.RearRight,
		Spare:      cmd.Tires.Spare,
	}
	i.Notes = cmd.Notes

	if err := uc.inspectionRepo.Create(ctx, i); err != nil {
		return nil, err
	}

	uc.logger.Infow("inspection recorded", "inspection_id", i.ID, "vehicle_id", i.VehicleID, "tenant_id", i.TenantID)
	return dto.FromInspection(i), nil
}
