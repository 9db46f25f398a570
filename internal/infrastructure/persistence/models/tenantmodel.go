package models

import "time"

// TenantModel is the GORM model for the tenants table.
type TenantModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:150;not null"`
	Slug      string    `gorm:"size:150;not null;uniqueIndex"`
	Email     string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:50"`
	Address   string    `gorm:"size:255"`
	LogoURL   string    `gorm:"column:logo_url;size:500"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TenantModel) TableName() string {
	return "tenants"
}
