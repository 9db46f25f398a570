package models

import "time"

// RentalModel is the GORM model for the rentals table. The number is
// unique per tenant and assigned from rental_counters inside the creation
// transaction.
type RentalModel struct {
	ID               uint       `gorm:"primaryKey;autoIncrement"`
	TenantID         uint       `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_tenant_number"`
	Number           string     `gorm:"size:20;not null;uniqueIndex:idx_tenant_number"`
	EmployeeID       uint       `gorm:"column:employee_id;not null;index"`
	VehicleID        uint       `gorm:"column:vehicle_id;not null;index"`
	ClientID         uint       `gorm:"column:client_id;not null;index"`
	InspectionID     *uint      `gorm:"column:inspection_id"`
	RentalDate       time.Time  `gorm:"column:rental_date;type:date;not null;index"`
	ScheduledReturn  time.Time  `gorm:"column:scheduled_return;type:date;not null;index"`
	ActualReturn     *time.Time `gorm:"column:actual_return;type:date"`
	PricePerDayCents int64      `gorm:"column:price_per_day_cents;not null"`
	DayCount         int        `gorm:"column:day_count;not null"`
	TotalCents       int64      `gorm:"column:total_cents;not null"`
	Comment          string     `gorm:"type:text"`
	Status           string     `gorm:"size:10;not null;default:'Activa';index"`
	Active           bool       `gorm:"not null;default:true;index"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime"`
}

func (RentalModel) TableName() string {
	return "rentals"
}

// RentalCounterModel backs the per-tenant rental number sequence. The row
// is locked FOR UPDATE while a number is taken.
type RentalCounterModel struct {
	TenantID  uint      `gorm:"column:tenant_id;primaryKey"`
	LastValue int64     `gorm:"column:last_value;not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (RentalCounterModel) TableName() string {
	return "rental_counters"
}
