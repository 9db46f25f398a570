package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlanModel is the GORM model for the subscription_plans table. Prices
// are integer cents; a NULL limit column means unlimited.
type PlanModel struct {
	ID            uint           `gorm:"primaryKey;autoIncrement"`
	Name          string         `gorm:"size:100;not null;uniqueIndex"`
	Description   string         `gorm:"type:text"`
	PriceUSDCents int64          `gorm:"column:price_usd_cents;not null;default:0"`
	PriceDOPCents int64          `gorm:"column:price_dop_cents;not null;default:0"`
	VehicleLimit  *int           `gorm:"column:vehicle_limit"`
	ClientLimit   *int           `gorm:"column:client_limit"`
	EmployeeLimit *int           `gorm:"column:employee_limit"`
	Features      datatypes.JSON `gorm:"type:json"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true;index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (PlanModel) TableName() string {
	return "subscription_plans"
}
