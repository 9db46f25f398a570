// Package dto carries the auth context's request/response shapes.
package dto

// TokenDTO is the login/refresh response payload.
type TokenDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         UserDTO `json:"user"`
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PrincipalDTO is what the frontend session bootstrap consumes: the
// resolved role, scope and capability flags.
type PrincipalDTO struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   *uint  `json:"tenant_id"`
	TenantName string `json:"tenant_name,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
	CanEdit    bool   `json:"can_edit"`
	IsReadOnly bool   `json:"is_read_only"`
}

// RegistrationDTO is returned after a company signs up.
type RegistrationDTO struct {
	TenantID   uint   `json:"tenant_id"`
	TenantSlug string `json:"tenant_slug"`
	UserID     uint   `json:"user_id"`
}
