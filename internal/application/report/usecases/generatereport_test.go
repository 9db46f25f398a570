package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/client"
	"rentora/internal/domain/employee"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type stubRentalRepo struct {
	rentals []*rental.Rental
}

func (s *stubRentalRepo) Create(ctx context.Context, r *rental.Rental) error { return nil }
func (s *stubRentalRepo) Return(ctx context.Context, r *rental.Rental) error { return nil }
func (s *stubRentalRepo) Update(ctx context.Context, r *rental.Rental) error { return nil }
func (s *stubRentalRepo) GetByID(ctx context.Context, id uint) (*rental.Rental, error) {
	return nil, errors.NewNotFoundError("rental not found")
}
func (s *stubRentalRepo) List(ctx context.Context, filter rental.Filter) ([]*rental.Rental, error) {
	return s.rentals, nil
}
func (s *stubRentalRepo) ListOverdueCandidates(ctx context.Context, cutoff time.Time) ([]*rental.Rental, error) {
	return nil, nil
}

type stubVehicleRepo struct {
	vehicles []*fleet.Vehicle
}

func (s *stubVehicleRepo) Create(ctx context.Context, v *fleet.Vehicle) error { return nil }
func (s *stubVehicleRepo) Update(ctx context.Context, v *fleet.Vehicle) error { return nil }
func (s *stubVehicleRepo) GetByID(ctx context.Context, id uint) (*fleet.Vehicle, error) {
	return nil, errors.NewNotFoundError("vehicle not found")
}
func (s *stubVehicleRepo) List(ctx context.Context, filter fleet.VehicleFilter) ([]*fleet.Vehicle, error) {
	return s.vehicles, nil
}
func (s *stubVehicleRepo) SoftDelete(ctx context.Context, id uint) error { return nil }

type stubClientRepo struct {
	clients []*client.Client
}

func (s *stubClientRepo) Create(ctx context.Context, c *client.Client) error { return nil }
func (s *stubClientRepo) Update(ctx context.Context, c *client.Client) error { return nil }
func (s *stubClientRepo) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	return nil, errors.NewNotFoundError("client not found")
}
func (s *stubClientRepo) ExistsByCedula(ctx context.Context, tenantID uint, cedula string, excludeID uint) (bool, error) {
	return false, nil
}
func (s *stubClientRepo) List(ctx context.Context, filter client.Filter) ([]*client.Client, error) {
	return s.clients, nil
}
func (s *stubClientRepo) SoftDelete(ctx context.Context, id uint) error { return nil }

type stubEmployeeRepo struct {
	employees []*employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (s *stubEmployeeRepo) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (s *stubEmployeeRepo) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	return nil, errors.NewNotFoundError("employee not found")
}
func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, error) {
	return s.employees, nil
}
func (s *stubEmployeeRepo) SoftDelete(ctx context.Context, id uint) error { return nil }

func reportDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 4, 0, 0, 0, time.UTC)
}

func makeReportRental(id, vehicleID, clientID, employeeID uint, totalCents int64) *rental.Rental {
	return &rental.Rental{
		ID:               id,
		TenantID:         1,
		Number:           "R-000001",
		VehicleID:        vehicleID,
		ClientID:         clientID,
		EmployeeID:       employeeID,
		RentalDate:       reportDate(2024, 6, 10),
		ScheduledReturn:  reportDate(2024, 6, 12),
		PricePerDayCents: totalCents / 2,
		DayCount:         2,
		TotalCents:       totalCents,
		Status:           rental.StatusActive,
		Active:           true,
	}
}

func newReportUseCase(rentals []*rental.Rental, vehicles []*fleet.Vehicle, clients []*client.Client, employees []*employee.Employee) *GenerateRentalReportUseCase {
	return NewGenerateRentalReportUseCase(
		&stubRentalRepo{rentals: rentals},
		&stubVehicleRepo{vehicles: vehicles},
		&stubClientRepo{clients: clients},
		&stubEmployeeRepo{employees: employees},
		logger.NewLogger(),
	)
}

func TestGenerateReportValidatesRange(t *testing.T) {
	uc := newReportUseCase(nil, nil, nil, nil)

	tests := []struct {
		name string
		cmd  GenerateRentalReportCommand
	}{
		{"missing range", GenerateRentalReportCommand{TenantID: 1}},
		{"missing end", GenerateRentalReportCommand{TenantID: 1, Start: "2024-06-01"}},
		{"bad start", GenerateRentalReportCommand{TenantID: 1, Start: "junk", End: "2024-06-30"}},
		{"inverted range", GenerateRentalReportCommand{TenantID: 1, Start: "2024-06-30", End: "2024-06-01"}},
		{"bad status", GenerateRentalReportCommand{TenantID: 1, Start: "2024-06-01", End: "2024-06-30", Status: "Pendiente"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestGenerateReportTotalsAndFallbackNames(t *testing.T) {
	rentals := []*rental.Rental{
		makeReportRental(1, 10, 20, 30, 10000),
		makeReportRental(2, 11, 20, 30, 4000),
	}
	vehicles := []*fleet.Vehicle{
		{ID: 10, Description: "Toyota Corolla 2022", VehicleTypeID: 1},
		// Vehicle 11 was soft-deleted and no longer listed.
	}
	clients := []*client.Client{{ID: 20, Name: "Juan Pérez"}}
	employees := []*employee.Employee{{ID: 30, Name: "María Gómez"}}

	uc := newReportUseCase(rentals, vehicles, clients, employees)
	report, err := uc.Execute(context.Background(), GenerateRentalReportCommand{
		TenantID: 1, Start: "2024-06-01", End: "2024-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalRentals)
	assert.Equal(t, int64(14000), report.TotalRevenueCents)
	assert.Equal(t, "140.00", report.TotalRevenue)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Toyota Corolla 2022", report.Rows[0].Vehicle)
	assert.Equal(t, "Vehículo #11", report.Rows[1].Vehicle)
	assert.Equal(t, "Juan Pérez", report.Rows[0].Client)
	assert.Equal(t, "María Gómez", report.Rows[0].Employee)
}

func TestGenerateReportLeaderTieBreaks(t *testing.T) {
	// Vehicles 10 and 11 tie on count; 11 wins on revenue. Clients 20 and
	// 21 tie on count and revenue; the lower ID wins.
	rentals := []*rental.Rental{
		makeReportRental(1, 10, 20, 30, 5000),
		makeReportRental(2, 10, 21, 30, 5000),
		makeReportRental(3, 11, 20, 30, 8000),
		makeReportRental(4, 11, 21, 30, 8000),
	}
	vehicles := []*fleet.Vehicle{
		{ID: 10, Description: "Corolla", VehicleTypeID: 1},
		{ID: 11, Description: "Hilux", VehicleTypeID: 2},
	}
	clients := []*client.Client{{ID: 20, Name: "Ana"}, {ID: 21, Name: "Luis"}}
	employees := []*employee.Employee{{ID: 30, Name: "Pedro"}}

	uc := newReportUseCase(rentals, vehicles, clients, employees)
	report, err := uc.Execute(context.Background(), GenerateRentalReportCommand{
		TenantID: 1, Start: "2024-06-01", End: "2024-06-30",
	})
	require.NoError(t, err)

	require.NotNil(t, report.TopVehicle)
	assert.Equal(t, uint(11), report.TopVehicle.ID)
	assert.Equal(t, "Hilux", report.TopVehicle.Name)
	assert.Equal(t, 2, report.TopVehicle.Count)
	assert.Equal(t, int64(16000), report.TopVehicle.RevenueCents)

	require.NotNil(t, report.TopClient)
	assert.Equal(t, uint(20), report.TopClient.ID)
	assert.Equal(t, "Ana", report.TopClient.Name)

	require.NotNil(t, report.TopEmployee)
	assert.Equal(t, uint(30), report.TopEmployee.ID)
	assert.Equal(t, 4, report.TopEmployee.Count)
}

func TestGenerateReportVehicleTypeFilter(t *testing.T) {
	rentals := []*rental.Rental{
		makeReportRental(1, 10, 20, 30, 5000),
		makeReportRental(2, 11, 20, 30, 8000),
	}
	vehicles := []*fleet.Vehicle{
		{ID: 10, Description: "Corolla", VehicleTypeID: 1},
		{ID: 11, Description: "Hilux", VehicleTypeID: 2},
	}

	uc := newReportUseCase(rentals, vehicles, nil, nil)
	report, err := uc.Execute(context.Background(), GenerateRentalReportCommand{
		TenantID: 1, Start: "2024-06-01", End: "2024-06-30", VehicleTypeID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalRentals)
	assert.Equal(t, int64(8000), report.TotalRevenueCents)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Hilux", report.Rows[0].Vehicle)
}

func TestGenerateReportEmptyRange(t *testing.T) {
	uc := newReportUseCase(nil, nil, nil, nil)
	report, err := uc.Execute(context.Background(), GenerateRentalReportCommand{
		TenantID: 1, Start: "2024-06-01", End: "2024-06-30",
	})
	require.NoError(t, err)

	assert.Zero(t, report.TotalRentals)
	assert.Empty(t, report.Rows)
	assert.Nil(t, report.TopVehicle)
	assert.Nil(t, report.TopClient)
	assert.Nil(t, report.TopEmployee)
}
