package usecases

import (
	"context"
	"fmt"
	"sort"

	"rentora/internal/application/report/dto"
	"rentora/internal/domain/client"
	"rentora/internal/domain/employee"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type GenerateRentalReportCommand struct {
	TenantID      uint
	Start         string
	End           string
	Status        string
	ClientID      uint
	EmployeeID    uint
	VehicleTypeID uint
}

// GenerateRentalReportUseCase aggregates rentals over a date range into
// totals, per-group tallies and the three leaders. Status, client and
// employee filters go into the query; the vehicle-type filter is applied
// after the fetch because it derives from the vehicle row.
type GenerateRentalReportUseCase struct {
	rentalRepo   rental.Repository
	vehicleRepo  fleet.VehicleRepository
	clientRepo   client.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewGenerateRentalReportUseCase(
	rentalRepo rental.Repository,
	vehicleRepo fleet.VehicleRepository,
	clientRepo client.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *GenerateRentalReportUseCase {
	return &GenerateRentalReportUseCase{
		rentalRepo:   rentalRepo,
		vehicleRepo:  vehicleRepo,
		clientRepo:   clientRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

type tally struct {
	id           uint
	count        int
	revenueCents int64
}

func (uc *GenerateRentalReportUseCase) Execute(ctx context.Context, cmd GenerateRentalReportCommand) (*dto.RentalReportDTO, error) {
	if cmd.Start == "" || cmd.End == "" {
		return nil, errors.NewValidationError("el rango de fechas es requerido")
	}
	start, err := biztime.ParseDate(cmd.Start)
	if err != nil {
		return nil, errors.NewValidationError("fecha de inicio inválida, use YYYY-MM-DD")
	}
	end, err := biztime.ParseDate(cmd.End)
	if err != nil {
		return nil, errors.NewValidationError("fecha de fin inválida, use YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, errors.NewValidationError("la fecha de inicio no puede ser posterior a la de fin")
	}
	if cmd.Status != "" && !rental.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("estado de renta inválido")
	}

	rentals, err := uc.rentalRepo.List(ctx, rental.Filter{
		TenantID:   cmd.TenantID,
		Status:     rental.Status(cmd.Status),
		ClientID:   cmd.ClientID,
		EmployeeID: cmd.EmployeeID,
		From:       start,
		To:         end,
	})
	if err != nil {
		return nil, err
	}

	vehicleNames, vehicleTypes, err := uc.vehicleIndex(ctx, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	clientNames, err := uc.clientIndex(ctx, cmd.TenantID)
	if err != nil {
		return nil, err
	}
	employeeNames, err := uc.employeeIndex(ctx, cmd.TenantID)
	if err != nil {
		return nil, err
	}

	report := &dto.RentalReportDTO{
		Start: cmd.Start,
		End:   cmd.End,
		Rows:  []dto.ReportRowDTO{},
	}
	vehicleTally := map[uint]*tally{}
	clientTally := map[uint]*tally{}
	employeeTally := map[uint]*tally{}

	for _, r := range rentals {
		if cmd.VehicleTypeID != 0 && vehicleTypes[r.VehicleID] != cmd.VehicleTypeID {
			continue
		}

		report.TotalRentals++
		report.TotalRevenueCents += r.TotalCents
		addTally(vehicleTally, r.VehicleID, r.TotalCents)
		addTally(clientTally, r.ClientID, r.TotalCents)
		addTally(employeeTally, r.EmployeeID, r.TotalCents)

		report.Rows = append(report.Rows, dto.ReportRowDTO{
			RentalID:    r.ID,
			Number:      r.Number,
			RentalDate:  biztime.FormatDate(r.RentalDate),
			Vehicle:     nameOrFallback(vehicleNames, r.VehicleID, "Vehículo"),
			Client:      nameOrFallback(clientNames, r.ClientID, "Cliente"),
			Employee:    nameOrFallback(employeeNames, r.EmployeeID, "Empleado"),
			DayCount:    r.DayCount,
			PricePerDay: utils.FormatCents(r.PricePerDayCents),
			Total:       utils.FormatCents(r.TotalCents),
			TotalCents:  r.TotalCents,
			Status:      string(r.Status),
			Comment:     r.Comment,
		})
	}

	report.TotalRevenue = utils.FormatCents(report.TotalRevenueCents)
	report.TopVehicle = pickLeader(vehicleTally, vehicleNames, "Vehículo")
	report.TopClient = pickLeader(clientTally, clientNames, "Cliente")
	report.TopEmployee = pickLeader(employeeTally, employeeNames, "Empleado")

	uc.logger.Infow("rental report generated",
		"tenant_id", cmd.TenantID,
		"start", cmd.Start,
		"end", cmd.End,
		"rentals", report.TotalRentals,
	)
	return report, nil
}

func addTally(m map[uint]*tally, id uint, cents int64) {
	t, ok := m[id]
	if !ok {
		t = &tally{id: id}
		m[id] = t
	}
	t.count++
	t.revenueCents += cents
}

// pickLeader orders by count, then revenue, then lowest ID so ties always
// resolve the same way.
func pickLeader(m map[uint]*tally, names map[uint]string, fallback string) *dto.LeaderDTO {
	if len(m) == 0 {
		return nil
	}
	tallies := make([]*tally, 0, len(m))
	for _, t := range m {
		tallies = append(tallies, t)
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].count != tallies[j].count {
			return tallies[i].count > tallies[j].count
		}
		if tallies[i].revenueCents != tallies[j].revenueCents {
			return tallies[i].revenueCents > tallies[j].revenueCents
		}
		return tallies[i].id < tallies[j].id
	})

	top := tallies[0]
	return &dto.LeaderDTO{
		ID:           top.id,
		Name:         nameOrFallback(names, top.id, fallback),
		Count:        top.count,
		Revenue:      utils.FormatCents(top.revenueCents),
		RevenueCents: top.revenueCents,
	}
}

// nameOrFallback covers rentals that reference soft-deleted rows, which
// the active-only listings no longer return.
func nameOrFallback(names map[uint]string, id uint, kind string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("%s #%d", kind, id)
}

func (uc *GenerateRentalReportUseCase) vehicleIndex(ctx context.Context, tenantID uint) (map[uint]string, map[uint]uint, error) {
	vehicles, err := uc.vehicleRepo.List(ctx, fleet.VehicleFilter{TenantID: tenantID})
	if err != nil {
		return nil, nil, err
	}
	names := make(map[uint]string, len(vehicles))
	types := make(map[uint]uint, len(vehicles))
	for _, v := range vehicles {
		names[v.ID] = v.Description
		types[v.ID] = v.VehicleTypeID
	}
	return names, types, nil
}

func (uc *GenerateRentalReportUseCase) clientIndex(ctx context.Context, tenantID uint) (map[uint]string, error) {
	clients, err := uc.clientRepo.List(ctx, client.Filter{TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (uc *GenerateRentalReportUseCase) employeeIndex(ctx context.Context, tenantID uint) (map[uint]string, error) {
	employees, err := uc.employeeRepo.List(ctx, employee.Filter{TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}
