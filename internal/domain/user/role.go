package user

import "rentora/internal/shared/constants"

// Role is the access level a principal has inside a tenant. Superadmin is
// not a membership role: it is derived from the configured operator email
// and carries no tenant scope.
type Role string

const (
	RoleSuperadmin Role = constants.RoleSuperadmin
	RoleAdmin      Role = constants.RoleAdmin
	RoleEmployee   Role = constants.RoleEmployee
	RoleReadOnly   Role = constants.RoleReadOnly
)

// IsAssignable reports whether the role can be stored on a membership.
func (r Role) IsAssignable() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleReadOnly:
		return true
	}
	return false
}

// Principal is the resolved identity threaded through request handling:
// who the caller is, which tenant they act for, and the two capability
// flags every screen gates on. TenantID is nil only for the superadmin.
type Principal struct {
	UserID   uint
	Email    string
	Role     Role
	TenantID *uint
}

func (p Principal) IsSuperadmin() bool {
	return p.Role == RoleSuperadmin
}

// IsAdmin is true for tenant admins and the superadmin.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperadmin
}

// CanEdit is true for every role except read-only.
func (p Principal) CanEdit() bool {
	switch p.Role {
	case RoleAdmin, RoleEmployee, RoleSuperadmin:
		return true
	}
	return false
}

func (p Principal) IsReadOnly() bool {
	return p.Role == RoleReadOnly
}

// Scope returns the tenant filter for queries. The superadmin gets
// (0, false): no filter, trusted to see all tenants. Every other principal
// is guaranteed a tenant by the fail-closed resolver.
func (p Principal) Scope() (uint, bool) {
	if p.IsSuperadmin() {
		return 0, false
	}
	if p.TenantID == nil {
		return 0, true
	}
	return *p.TenantID, true
}
