package usecases

import (
	"context"
	"time"

	"rentora/internal/application/rental/dto"
	"rentora/internal/domain/client"
	"rentora/internal/domain/employee"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/inspection"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type CreateRentalCommand struct {
	TenantID     uint
	EmployeeID   uint
	VehicleID    uint
	ClientID     uint
	InspectionID *uint
	RentalDate   string
	DayCount     int
	Comment      string
}

// CreateRentalUseCase opens a rental. References are verified against the
// tenant up front; the repository then re-checks the vehicle under a row
// lock and snapshots the daily rate inside the creation transaction, so a
// concurrent rate edit or double rental cannot slip through.
type CreateRentalUseCase struct {
	rentalRepo     rental.Repository
	vehicleRepo    fleet.VehicleRepository
	clientRepo     client.Repository
	employeeRepo   employee.Repository
	inspectionRepo inspection.Repository
	logger         logger.Interface
}

func NewCreateRentalUseCase(
	rentalRepo rental.Repository,
	vehicleRepo fleet.VehicleRepository,
	clientRepo client.Repository,
	employeeRepo employee.Repository,
	inspectionRepo inspection.Repository,
	logger logger.Interface,
) *CreateRentalUseCase {
	return &CreateRentalUseCase{
		rentalRepo:     rentalRepo,
		vehicleRepo:    vehicleRepo,
		clientRepo:     clientRepo,
		employeeRepo:   employeeRepo,
		inspectionRepo: inspectionRepo,
		logger:         logger,
	}
}

func (uc *CreateRentalUseCase) Execute(ctx context.Context, cmd CreateRentalCommand) (*dto.RentalDTO, error) {
	if cmd.DayCount < 1 {
		return nil, errors.NewValidationError("la cantidad de días debe ser al menos 1")
	}

	v, err := uc.vehicleRepo.GetByID(ctx, cmd.VehicleID)
	if err != nil {
		return nil, err
	}
	if v.TenantID != cmd.TenantID {
		return nil, errors.NewNotFoundError("vehicle not found")
	}
	if !v.Available {
		return nil, errors.NewConflictError("el vehículo no está disponible")
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

	if cmd.InspectionID != nil {
		insp, err := uc.inspectionRepo.GetByID(ctx, *cmd.InspectionID)
		if err != nil {
			return nil, err
		}
		if insp.TenantID != cmd.TenantID {
			return nil, errors.NewNotFoundError("inspection not found")
		}
		if insp.VehicleID != cmd.VehicleID {
			return nil, errors.NewValidationError("la inspección no corresponde al vehículo")
		}
	}

	rentalDate := biztime.StartOfDayUTC(time.Now())
	if cmd.RentalDate != "" {
		parsed, err := biztime.ParseDate(cmd.RentalDate)
		if err != nil {
			return nil, errors.NewValidationError("fecha de renta inválida, use YYYY-MM-DD")
		}
		rentalDate = parsed
	}

	r, err := rental.New(cmd.TenantID, cmd.EmployeeID, cmd.VehicleID, cmd.ClientID,
		cmd.InspectionID, rentalDate, cmd.DayCount, v.PricePerDayCents, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.rentalRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	uc.logger.Infow("rental opened",
		"rental_id", r.ID,
		"number", r.Number,
		"vehicle_id", r.VehicleID,
		"tenant_id", r.TenantID,
	)
	return dto.FromRental(r), nil
}
