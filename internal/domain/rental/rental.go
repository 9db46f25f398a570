// Package rental holds the rental aggregate and its lifecycle:
// Activa --return--> Devuelta, Activa --sweep--> Vencida.
package rental

import (
	"fmt"
	"time"

	"rentora/internal/shared/constants"
)

type Status string

const (
	StatusActive   Status = constants.RentalStatusActive
	StatusReturned Status = constants.RentalStatusReturned
	StatusOverdue  Status = constants.RentalStatusOverdue
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusReturned, StatusOverdue:
		return true
	}
	return false
}

// Rental links a vehicle, client and employee (plus an optional
// inspection). Dates are business-timezone calendar dates stored at UTC
// midnight; money is integer cents. PricePerDayCents is snapshotted from
// the vehicle at creation so later rate changes do not affect history.
type Rental struct {
	ID               uint
	TenantID         uint
	Number           string
	EmployeeID       uint
	VehicleID        uint
	ClientID         uint
	InspectionID     *uint
	RentalDate       time.Time
	ScheduledReturn  time.Time
	ActualReturn     *time.Time
	PricePerDayCents int64
	DayCount         int
	TotalCents       int64
	Comment          string
	Status           Status
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// New creates an active rental. The total is price x days in exact cents
// and the scheduled return is rentalDate plus dayCount calendar days. The
// rental number is assigned by the repository from the tenant's sequence
// inside the creation transaction.
func New(tenantID, employeeID, vehicleID, clientID uint, inspectionID *uint,
	rentalDate time.Time, dayCount int, pricePerDayCents int64, comment string) (*Rental, error) {

	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if employeeID == 0 || vehicleID == 0 || clientID == 0 {
		return nil, fmt.Errorf("employee, vehicle and client are required")
	}
	if dayCount < 1 {
		return nil, fmt.Errorf("day count must be at least 1")
	}
	if pricePerDayCents <= 0 {
		return nil, fmt.Errorf("price per day must be positive")
	}

	now := time.Now().UTC()
	return &Rental{
		TenantID:         tenantID,
		EmployeeID:       employeeID,
		VehicleID:        vehicleID,
		ClientID:         clientID,
		InspectionID:     inspectionID,
		RentalDate:       rentalDate,
		ScheduledReturn:  rentalDate.AddDate(0, 0, dayCount),
		PricePerDayCents: pricePerDayCents,
		DayCount:         dayCount,
		TotalCents:       pricePerDayCents * int64(dayCount),
		Comment:          comment,
		Status:           StatusActive,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// MarkReturned transitions the rental to Devuelta. Overdue rentals are
// still returnable; already-returned ones are not.
func (r *Rental) MarkReturned(returnDate time.Time) error {
	if r.Status == StatusReturned {
		return fmt.Errorf("rental %s is already returned", r.Number)
	}
	r.Status = StatusReturned
	r.ActualReturn = &returnDate
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkOverdue transitions an active rental whose scheduled return has
// passed to Vencida. Called by the worker sweep.
func (r *Rental) MarkOverdue(now time.Time) error {
	if r.Status != StatusActive {
		return fmt.Errorf("only active rentals can become overdue, current status: %s", r.Status)
	}
	if !r.ScheduledReturn.Before(now) {
		return fmt.Errorf("rental %s has not passed its scheduled return", r.Number)
	}
	r.Status = StatusOverdue
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOpen reports whether the vehicle is still out (active or overdue).
func (r *Rental) IsOpen() bool {
	return r.Status == StatusActive || r.Status == StatusOverdue
}
