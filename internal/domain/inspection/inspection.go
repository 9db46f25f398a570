// Package inspection holds vehicle condition snapshots. An inspection is
// immutable once created; there is no update path.
package inspection

import (
	"context"
	"fmt"
	"time"
)

// FuelLevel is the tank reading at inspection time.
type FuelLevel string

const (
	FuelQuarter       FuelLevel = "1/4"
	FuelHalf          FuelLevel = "1/2"
	FuelThreeQuarters FuelLevel = "3/4"
	FuelFull          FuelLevel = "Lleno"
)

func (f FuelLevel) IsValid() bool {
	switch f {
	case FuelQuarter, FuelHalf, FuelThreeQuarters, FuelFull:
		return true
	}
	return false
}

// TireState records the condition of the five tires (four mounted plus the
// spare); true means the tire is in acceptable condition.
type TireState struct {
	FrontLeft  bool
	FrontRight bool
	RearLeft   bool
	RearRight  bool
	Spare      bool
}

type Inspection struct {
	ID             uint
	TenantID       uint
	VehicleID      uint
	ClientID       uint
	EmployeeID     uint
	HasScratches   bool
	FuelLevel      FuelLevel
	HasSpareTire   bool
	HasJack        bool
	HasGlassDamage bool
	Tires          TireState
	Notes          string
	InspectedAt    time.Time
	Active         bool
	CreatedAt      time.Time
}

func NewInspection(tenantID, vehicleID, clientID, employeeID uint, fuelLevel FuelLevel, inspectedAt time.Time) (*Inspection, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if vehicleID == 0 || clientID == 0 || employeeID == 0 {
		return nil, fmt.Errorf("vehicle, client and employee are required")
	}
	if !fuelLevel.IsValid() {
		return nil, fmt.Errorf("invalid fuel level: %s", fuelLevel)
	}

	return &Inspection{
		TenantID:    tenantID,
		VehicleID:   vehicleID,
		ClientID:    clientID,
		EmployeeID:  employeeID,
		FuelLevel:   fuelLevel,
		InspectedAt: inspectedAt,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

type Filter struct {
	TenantID  uint
	VehicleID uint
}

type Repository interface {
	Create(ctx context.Context, i *Inspection) error
	GetByID(ctx context.Context, id uint) (*Inspection, error)
	List(ctx context.Context, filter Filter) ([]*Inspection, error)
	SoftDelete(ctx context.Context, id uint) error
}
