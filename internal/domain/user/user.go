// Package user holds authentication principals and their tenant
// memberships.
package user

import (
	"fmt"
	"strings"
	"time"

	"rentora/internal/shared/validation"
)

type User struct {
	ID           uint
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(email, name, passwordHash string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validation.ValidateEmail(email) {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now().UTC()
}
