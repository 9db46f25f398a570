package models

import "time"

// EmployeeModel is the GORM model for the employees table.
type EmployeeModel struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"`
	TenantID          uint      `gorm:"column:tenant_id;not null;index"`
	Name              string    `gorm:"size:150;not null"`
	Cedula            string    `gorm:"size:13;not null"`
	WorkShift         string    `gorm:"column:work_shift;size:15;not null"`
	CommissionPercent float64   `gorm:"column:commission_percent;not null;default:0"`
	HireDate          time.Time `gorm:"column:hire_date;type:date;not null"`
	Phone             string    `gorm:"size:50"`
	Address           string    `gorm:"size:255"`
	Active            bool      `gorm:"not null;default:true;index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
