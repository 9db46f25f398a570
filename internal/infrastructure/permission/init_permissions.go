package permission

import (
	"fmt"

	"rentora/internal/shared/constants"
)

// Resource names used in policies and route annotations.
const (
	ResourceTenants       = "tenants"
	ResourcePlans         = "plans"
	ResourceSubscriptions = "subscriptions"
	ResourceUsers         = "users"
	ResourceVehicles      = "vehicles"
	ResourceCatalogs      = "catalogs"
	ResourceClients       = "clients"
	ResourceEmployees     = "employees"
	ResourceInspections   = "inspections"
	ResourceRentals       = "rentals"
	ResourceReports       = "reports"
	ResourceDashboard     = "dashboard"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

var tenantResources = []string{
	ResourceVehicles,
	ResourceCatalogs,
	ResourceClients,
	ResourceEmployees,
	ResourceInspections,
	ResourceRentals,
	ResourceReports,
	ResourceDashboard,
}

// InitPolicies seeds the role policies idempotently. Existing rows are
// left untouched by casbin's AddPolicy.
func InitPolicies(e *Enforcer) error {
	type rule struct{ role, resource, action string }
	var rules []rule

	// Superadmin can do everything, including tenant and plan management.
	all := append([]string{ResourceTenants, ResourcePlans, ResourceSubscriptions, ResourceUsers}, tenantResources...)
	for _, res := range all {
		rules = append(rules,
			rule{constants.RoleSuperadmin, res, ActionRead},
			rule{constants.RoleSuperadmin, res, ActionWrite},
		)
	}

	// Admins manage everything inside their tenant, including staff
	// accounts, and can see their own subscription.
	for _, res := range tenantResources {
		rules = append(rules,
			rule{constants.RoleAdmin, res, ActionRead},
			rule{constants.RoleAdmin, res, ActionWrite},
		)
	}
	rules = append(rules,
		rule{constants.RoleAdmin, ResourceUsers, ActionRead},
		rule{constants.RoleAdmin, ResourceUsers, ActionWrite},
		rule{constants.RoleAdmin, ResourceSubscriptions, ActionRead},
	)

	// Employees run day-to-day operations but cannot manage accounts.
	for _, res := range []string{ResourceVehicles, ResourceCatalogs, ResourceClients, ResourceEmployees, ResourceInspections, ResourceRentals} {
		rules = append(rules,
			rule{constants.RoleEmployee, res, ActionRead},
			rule{constants.RoleEmployee, res, ActionWrite},
		)
	}
	rules = append(rules,
		rule{constants.RoleEmployee, ResourceReports, ActionRead},
		rule{constants.RoleEmployee, ResourceDashboard, ActionRead},
	)

	// Read-only users see everything in their tenant, change nothing.
	for _, res := range tenantResources {
		rules = append(rules, rule{constants.RoleReadOnly, res, ActionRead})
	}

	for _, r := range rules {
		if err := e.AddPolicy(r.role, r.resource, r.action); err != nil {
			return fmt.Errorf("failed to seed policy %s/%s/%s: %w", r.role, r.resource, r.action, err)
		}
	}
	return nil
}
