package models

import "time"

// LimitsModel is the GORM model for the tenant_limits table, one row per
// tenant. Current counters are maintained transactionally alongside the
// entity writes they account for.
type LimitsModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	TenantID         uint      `gorm:"column:tenant_id;not null;uniqueIndex"`
	CurrentVehicles  int       `gorm:"column:current_vehicles;not null;default:0"`
	CurrentClients   int       `gorm:"column:current_clients;not null;default:0"`
	CurrentEmployees int       `gorm:"column:current_employees;not null;default:0"`
	MaxVehicles      *int      `gorm:"column:max_vehicles"`
	MaxClients       *int      `gorm:"column:max_clients"`
	MaxEmployees     *int      `gorm:"column:max_employees"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (LimitsModel) TableName() string {
	return "tenant_limits"
}
