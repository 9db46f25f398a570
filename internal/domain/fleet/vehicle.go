// Package fleet holds vehicles and the lookup catalogs they reference.
package fleet

import (
	"fmt"
	"strings"
	"time"
)

// Vehicle is tenant-scoped. Plate and chassis numbers are unique within a
// tenant (database unique indexes back this up). PricePerDayCents is the
// daily rate snapshotted onto rentals at creation time.
type Vehicle struct {
	ID               uint
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
	Available        bool
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewVehicle(tenantID uint, description, chassis, engine, plate string,
	typeID, brandID, modelID, fuelTypeID uint, pricePerDayCents int64) (*Vehicle, error) {

	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("vehicle description is required")
	}
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, fmt.Errorf("plate number is required")
	}
	chassis = strings.ToUpper(strings.TrimSpace(chassis))
	if chassis == "" {
		return nil, fmt.Errorf("chassis number is required")
	}
	if typeID == 0 || brandID == 0 || modelID == 0 || fuelTypeID == 0 {
		return nil, fmt.Errorf("vehicle type, brand, model and fuel type are required")
	}
	if pricePerDayCents <= 0 {
		return nil, fmt.Errorf("price per day must be positive")
	}

	now := time.Now().UTC()
	return &Vehicle{
		TenantID:         tenantID,
		Description:      description,
		ChassisNumber:    chassis,
		EngineNumber:     strings.ToUpper(strings.TrimSpace(engine)),
		PlateNumber:      plate,
		VehicleTypeID:    typeID,
		BrandID:          brandID,
		ModelID:          modelID,
		FuelTypeID:       fuelTypeID,
		PricePerDayCents: pricePerDayCents,
		Available:        true,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// CanBeRented requires the vehicle to be active (not soft-deleted) and not
// currently out on a rental.
func (v *Vehicle) CanBeRented() bool {
	return v.Active && v.Available
}

func (v *Vehicle) SoftDelete() {
	v.Active = false
	v.UpdatedAt = time.Now().UTC()
}
