// Package constants defines shared constant values used across layers.
package constants

// Roles assignable through tenant memberships. Superadmin is not a
// membership role: it is derived from the configured operator email.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleEmployee   = "empleado"
	RoleReadOnly   = "solo_lectura"
)

// Gin context keys set by the auth/principal middleware.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyPrincipal = "principal"
)

// Rental lifecycle states.
const (
	RentalStatusActive   = "Activa"
	RentalStatusReturned = "Devuelta"
	RentalStatusOverdue  = "Vencida"
)

// Subscription states.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusInactive  = "inactive"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)
