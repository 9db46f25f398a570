package models

import "time"

// InspectionModel is the GORM model for the inspections table. Rows are
// never updated after creation.
type InspectionModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	TenantID       uint      `gorm:"column:tenant_id;not null;index"`
	VehicleID      uint      `gorm:"column:vehicle_id;not null;index"`
	ClientID       uint      `gorm:"column:client_id;not null"`
	EmployeeID     uint      `gorm:"column:employee_id;not null"`
	HasScratches   bool      `gorm:"column:has_scratches;not null;default:false"`
	FuelLevel      string    `gorm:"column:fuel_level;size:10;not null"`
	HasSpareTire   bool      `gorm:"column:has_spare_tire;not null;default:false"`
	HasJack        bool      `gorm:"column:has_jack;not null;default:false"`
	HasGlassDamage bool      `gorm:"column:has_glass_damage;not null;default:false"`
	TireFrontLeft  bool      `gorm:"column:tire_front_left;not null;default:true"`
	TireFrontRight bool      `gorm:"column:tire_front_right;not null;default:true"`
	TireRearLeft   bool      `gorm:"column:tire_rear_left;not null;default:true"`
	TireRearRight  bool      `gorm:"column:tire_rear_right;not null;default:true"`
	TireSpare      bool      `gorm:"column:tire_spare;not null;default:true"`
	Notes          string    `gorm:"type:text"`
	InspectedAt    time.Time `gorm:"column:inspected_at;type:date;not null"`
	Active         bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (InspectionModel) TableName() string {
	return "inspections"
}
