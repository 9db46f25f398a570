// Package dto carries the subscription context's shapes.
package dto

import (
	"time"

	"rentora/internal/domain/subscription"
	"rentora/internal/shared/utils"
)

type PlanDTO struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PriceUSD      string   `json:"price_usd"`
	PriceDOP      string   `json:"price_dop"`
	PriceUSDCents int64    `json:"price_usd_cents"`
	PriceDOPCents int64    `json:"price_dop_cents"`
	VehicleLimit  *int     `json:"vehicle_limit"`
	ClientLimit   *int     `json:"client_limit"`
	EmployeeLimit *int     `json:"employee_limit"`
	Features      []string `json:"features"`
	IsActive      bool     `json:"is_active"`
}

func FromPlan(p *subscription.Plan) *PlanDTO {
	return &PlanDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PriceUSD:      utils.FormatCents(p.PriceUSDCents),
		PriceDOP:      utils.FormatCents(p.PriceDOPCents),
		PriceUSDCents: p.PriceUSDCents,
		PriceDOPCents: p.PriceDOPCents,
		VehicleLimit:  p.VehicleLimit,
		ClientLimit:   p.ClientLimit,
		EmployeeLimit: p.EmployeeLimit,
		Features:      p.Features,
		IsActive:      p.IsActive,
	}
}

type SubscriptionDTO struct {
	ID        uint       `json:"id"`
	TenantID  uint       `json:"tenant_id"`
	PlanID    uint       `json:"plan_id"`
	PlanName  string     `json:"plan_name,omitempty"`
	Status    string     `json:"status"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	AutoRenew bool       `json:"auto_renew"`
}

func FromSubscription(s *subscription.Subscription) *SubscriptionDTO {
	return &SubscriptionDTO{
		ID:        s.ID,
		TenantID:  s.TenantID,
		PlanID:    s.PlanID,
		Status:    string(s.Status),
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		AutoRenew: s.AutoRenew,
	}
}

// UsageDTO mirrors the three usage cards on the settings screen.
type UsageDTO struct {
	Vehicles  subscription.Usage `json:"vehicles"`
	Clients   subscription.Usage `json:"clients"`
	Employees subscription.Usage `json:"employees"`
}
