package models

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Name         string    `gorm:"size:150"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// MembershipModel is the GORM model for the tenant_users table. It maps a
// user to a role inside one tenant.
type MembershipModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TenantID  uint      `gorm:"column:tenant_id;not null;index;uniqueIndex:idx_tenant_user"`
	UserID    uint      `gorm:"column:user_id;not null;index;uniqueIndex:idx_tenant_user"`
	Role      string    `gorm:"size:20;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MembershipModel) TableName() string {
	return "tenant_users"
}
