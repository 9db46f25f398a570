// Package tenant holds the tenant aggregate: one customer company using
// the system. Every business entity except the global plan catalog is
// scoped to exactly one tenant.
package tenant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"rentora/internal/shared/validation"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Tenant struct {
	ID        uint
	Name      string
	Slug      string
	Email     string
	Phone     string
	Address   string
	LogoURL   string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTenant(name, slug, email string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("tenant name too long (max 150 characters)")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid tenant slug: %s", slug)
	}
	if !validation.ValidateEmail(email) {
		return nil, fmt.Errorf("invalid tenant email: %s", email)
	}

	now := time.Now().UTC()
	return &Tenant{
		Name:      name,
		Slug:      slug,
		Email:     email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Slugify derives a URL-safe slug from a company name. Collisions are
// resolved by the caller (a random suffix is appended on conflict).
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func (t *Tenant) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now().UTC()
}

func (t *Tenant) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now().UTC()
}
