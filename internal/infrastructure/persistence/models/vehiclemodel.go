package models

import "time"

// VehicleModel is the GORM model for the vehicles table. Plate and
// chassis numbers are unique within a tenant.
type VehicleModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	TenantID         uint      `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_tenant_plate;uniqueIndex:idx_tenant_chassis"`
	Description      string    `gorm:"size:255;not null"`
	ChassisNumber    string    `gorm:"column:chassis_number;size:50;not null;uniqueIndex:idx_tenant_chassis"`
	EngineNumber     string    `gorm:"column:engine_number;size:50"`
	PlateNumber      string    `gorm:"column:plate_number;size:20;not null;uniqueIndex:idx_tenant_plate"`
	VehicleTypeID    uint      `gorm:"column:vehicle_type_id;not null"`
	BrandID          uint      `gorm:"column:brand_id;not null"`
	ModelID          uint      `gorm:"column:model_id;not null"`
	FuelTypeID       uint      `gorm:"column:fuel_type_id;not null"`
	PricePerDayCents int64     `gorm:"column:price_per_day_cents;not null"`
	ImageURL         string    `gorm:"column:image_url;size:500"`
	Available        bool      `gorm:"not null;default:true;index"`
	Active           bool      `gorm:"not null;default:true;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (VehicleModel) TableName() string {
	return "vehicles"
}
