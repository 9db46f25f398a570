package models

import "time"

// ClientModel is the GORM model for the clients table. The cedula is
// stored in its formatted XXX-XXXXXXX-X form and is unique per tenant.
type ClientModel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	TenantID         uint      `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_tenant_cedula"`
	Name             string    `gorm:"size:150;not null"`
	Cedula           string    `gorm:"size:13;not null;uniqueIndex:idx_tenant_cedula"`
	CreditCardNumber string    `gorm:"column:credit_card_number;size:25"`
	CreditLimitCents int64     `gorm:"column:credit_limit_cents;not null;default:0"`
	PersonType       string    `gorm:"column:person_type;size:10;not null"`
	Phone            string    `gorm:"size:50"`
	Address          string    `gorm:"size:255"`
	Active           bool      `gorm:"not null;default:true;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (ClientModel) TableName() string {
	return "clients"
}
