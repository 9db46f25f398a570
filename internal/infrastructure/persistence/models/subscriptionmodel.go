package models

import "time"

// SubscriptionModel is the GORM model for the tenant_subscriptions table.
type SubscriptionModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	TenantID  uint       `gorm:"column:tenant_id;not null;index"`
	PlanID    uint       `gorm:"column:plan_id;not null;index"`
	Status    string     `gorm:"size:20;not null;default:'active';index"`
	StartsAt  time.Time  `gorm:"column:starts_at;not null"`
	EndsAt    *time.Time `gorm:"column:ends_at"`
	AutoRenew bool       `gorm:"column:auto_renew;not null;default:false"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (SubscriptionModel) TableName() string {
	return "tenant_subscriptions"
}
