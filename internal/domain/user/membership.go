package user

import (
	"fmt"
	"time"
)

// Membership assigns a user a role inside one tenant.
type Membership struct {
	ID        uint
	TenantID  uint
	UserID    uint
	Role      Role
	IsActive  bool
	CreatedAt time.Time
}

func NewMembership(tenantID, userID uint, role Role) (*Membership, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsAssignable() {
		return nil, fmt.Errorf("role %q cannot be assigned to a membership", role)
	}

	return &Membership{
		TenantID:  tenantID,
		UserID:    userID,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *Membership) ChangeRole(role Role) error {
	if !role.IsAssignable() {
		return fmt.Errorf("role %q cannot be assigned to a membership", role)
	}
	m.Role = role
	return nil
}

func (m *Membership) Deactivate() {
	m.IsActive = false
}
