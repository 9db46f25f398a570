// Package dto carries the inspection context's shapes.
package dto

import (
	"rentora/internal/domain/inspection"
	"rentora/internal/shared/biztime"
)

type TireStateDTO struct {
	FrontLeft  bool `json:"front_left"`
	FrontRight bool `json:"front_right"`
	RearLeft   bool `json:"rear_left"`
	RearRight  bool `json:"rear_right"`
	Spare      bool `json:"spare"`
}

type InspectionDTO struct {
	ID             uint         `json:"id"`
	TenantID       uint         `json:"tenant_id"`
	VehicleID      uint         `json:"vehicle_id"`
	ClientID       uint         `json:"client_id"`
	EmployeeID     uint         `json:"employee_id"`
	HasScratches   bool         `json:"has_scratches"`
	FuelLevel      string       `json:"fuel_level"`
	HasSpareTire   bool         `json:"has_spare_tire"`
	HasJack        bool         `json:"has_jack"`
	HasGlassDamage bool         `json:"has_glass_damage"`
	Tires          TireStateDTO `json:"tires"`
	Notes          string       `json:"notes"`
	InspectedAt    string       `json:"inspected_at"`
}

func FromInspection(i *inspection.Inspection) *InspectionDTO {
	return &InspectionDTO{
		ID:             i.ID,
		TenantID:       i.TenantID,
		VehicleID:      i.VehicleID,
		ClientID:       i.ClientID,
		EmployeeID:     i.EmployeeID,
		HasScratches:   i.HasScratches,
		FuelLevel:      string(i.FuelLevel),
		HasSpareTire:   i.HasSpareTire,
		HasJack:        i.HasJack,
		HasGlassDamage: i.HasGlassDamage,
		Tires: TireStateDTO{
			FrontLeft:  i.Tires.FrontLeft,
			FrontRight: i.Tires.FrontRight,
			RearLeft:   i.Tires.RearLeft,
			RearRight:  i.Tires.RearRight,
			Spare:      i.Tires.Spare,
		},
		Notes:       i.Notes,
		InspectedAt: biztime.FormatDate(i.InspectedAt),
	}
}
