// Package subscription holds the global plan catalog, tenant
// subscriptions, and the per-tenant usage limits derived from a plan.
package subscription

import (
	"fmt"
	"strings"
	"time"
)

// Plan is a global catalog entry; plans are not tenant-scoped. Prices are
// kept in integer cents in both billing currencies. A nil limit means
// unlimited.
type Plan struct {
	ID            uint
	Name          string
	Description   string
	PriceUSDCents int64
	PriceDOPCents int64
	VehicleLimit  *int
	ClientLimit   *int
	EmployeeLimit *int
	Features      []string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewPlan(name, description string, priceUSDCents, priceDOPCents int64) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if priceUSDCents < 0 || priceDOPCents < 0 {
		return nil, fmt.Errorf("plan price cannot be negative")
	}

	now := time.Now().UTC()
	return &Plan{
		Name:          name,
		Description:   description,
		PriceUSDCents: priceUSDCents,
		PriceDOPCents: priceDOPCents,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SetLimits sets the three resource caps. Nil means unlimited; negative
// values are rejected.
func (p *Plan) SetLimits(vehicles, clients, employees *int) error {
	for _, l := range []*int{vehicles, clients, employees} {
		if l != nil && *l < 0 {
			return fmt.Errorf("plan limit cannot be negative")
		}
	}
	p.VehicleLimit = vehicles
	p.ClientLimit = clients
	p.EmployeeLimit = employees
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Deactivate soft-deactivates the plan. Plans are never hard-deleted so
// historical subscriptions keep their reference.
func (p *Plan) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
}

func (p *Plan) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now().UTC()
}
