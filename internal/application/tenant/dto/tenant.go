// Package dto carries the tenant context's response shapes.
package dto

import (
	"time"

	"rentora/internal/domain/tenant"
)

type TenantDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	LogoURL   string    `json:"logo_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTenant(t *tenant.Tenant) *TenantDTO {
	return &TenantDTO{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		Email:     t.Email,
		Phone:     t.Phone,
		Address:   t.Address,
		LogoURL:   t.LogoURL,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

type MemberDTO struct {
	MembershipID uint   `json:"membership_id"`
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	IsActive     bool   `json:"is_active"`
}
