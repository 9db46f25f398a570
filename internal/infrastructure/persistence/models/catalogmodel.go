package models

import "time"

// The four lookup catalogs share a shape; vehicle models additionally
// reference a brand. Each gets its own table.

type VehicleTypeModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TenantID    uint      `gorm:"column:tenant_id;not null;index"`
	Description string    `gorm:"size:100;not null"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (VehicleTypeModel) TableName() string {
	return "vehicle_types"
}

type BrandModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TenantID    uint      `gorm:"column:tenant_id;not null;index"`
	Description string    `gorm:"size:100;not null"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (BrandModel) TableName() string {
	return "brands"
}

type VehicleModelModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TenantID    uint      `gorm:"column:tenant_id;not null;index"`
	BrandID     uint      `gorm:"column:brand_id;not null;index"`
	Description string    `gorm:"size:100;not null"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (VehicleModelModel) TableName() string {
	return "vehicle_models"
}

type FuelTypeModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	TenantID    uint      `gorm:"column:tenant_id;not null;index"`
	Description string    `gorm:"size:100;not null"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (FuelTypeModel) TableName() string {
	return "fuel_types"
}
