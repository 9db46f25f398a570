// Package dto carries the fleet context's shapes.
package dto

import (
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/utils"
)

type VehicleDTO struct {
	ID               uint   `json:"id"`
	TenantID         uint   `json:"tenant_id"`
	Description      string `json:"description"`
	ChassisNumber    string `json:"chassis_number"`
	EngineNumber     string `json:"engine_number"`
	PlateNumber      string `json:"plate_number"`
	VehicleTypeID    uint   `json:"vehicle_type_id"`
	BrandID          uint   `json:"brand_id"`
	ModelID          uint   `json:"model_id"`
	FuelTypeID       uint   `json:"fuel_type_id"`
	PricePerDay      string `json:"price_per_day"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	ImageURL         string `json:"image_url"`
	Available        bool   `json:"available"`
}

func FromVehicle(v *fleet.Vehicle) *VehicleDTO {
	return &VehicleDTO{
		ID:               v.ID,
		TenantID:         v.TenantID,
		Description:      v.Description,
		ChassisNumber:    v.ChassisNumber,
		EngineNumber:     v.EngineNumber,
		PlateNumber:      v.PlateNumber,
		VehicleTypeID:    v.VehicleTypeID,
		BrandID:          v.BrandID,
		ModelID:          v.ModelID,
		FuelTypeID:       v.FuelTypeID,
		PricePerDay:      utils.FormatCents(v.PricePerDayCents),
		PricePerDayCents: v.PricePerDayCents,
		ImageURL:         v.ImageURL,
		Available:        v.Available,
	}
}

type CatalogItemDTO struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	BrandID     uint   `json:"brand_id,omitempty"`
}

func FromCatalogItem(item *fleet.CatalogItem) *CatalogItemDTO {
	return &CatalogItemDTO{
		ID:          item.ID,
		Description: item.Description,
		BrandID:     item.BrandID,
	}
}
