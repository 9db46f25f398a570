// Package stats defines the read models behind the dashboards. They are
// aggregates over other contexts' tables, so they get their own repository
// instead of piggybacking on the entity repositories.
package stats

import "context"

// TenantStats is the operational dashboard for one tenant. "Today" is the
// business-timezone calendar day; the weekly and monthly figures are
// rolling 7- and 30-day lookback windows, not calendar weeks or months.
type TenantStats struct {
	TotalVehicles     int64 `json:"total_vehicles"`
	AvailableVehicles int64 `json:"available_vehicles"`
	ActiveClients     int64 `json:"active_clients"`
	ActiveEmployees   int64 `json:"active_employees"`
	ActiveRentals     int64 `json:"active_rentals"`
	RentalsToday      int64 `json:"rentals_today"`
	IncomeTodayCents  int64 `json:"income_today_cents"`
	IncomeWeekCents   int64 `json:"income_week_cents"`
	IncomeMonthCents  int64 `json:"income_month_cents"`
}

// FinancialStats is the tenant's revenue view over the same windows plus
// all-time totals.
type FinancialStats struct {
	IncomeTodayCents  int64 `json:"income_today_cents"`
	IncomeWeekCents   int64 `json:"income_week_cents"`
	IncomeMonthCents  int64 `json:"income_month_cents"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	OpenRentalCents   int64 `json:"open_rental_cents"`
}

// PlanCount is one slice of the per-plan subscription breakdown.
type PlanCount struct {
	PlanID   uint   `json:"plan_id"`
	PlanName string `json:"plan_name"`
	Count    int64  `json:"count"`
}

// AdminStats is the superadmin's cross-tenant view. MRRUSDCents sums the
// USD price of every active subscription's plan.
type AdminStats struct {
	Tenants             int64       `json:"tenants"`
	ActiveSubscriptions int64       `json:"active_subscriptions"`
	PlanBreakdown       []PlanCount `json:"plan_breakdown"`
	MRRUSDCents         int64       `json:"mrr_usd_cents"`
}

type Repository interface {
	TenantStats(ctx context.Context, tenantID uint) (*TenantStats, error)
	FinancialStats(ctx context.Context, tenantID uint) (*FinancialStats, error)
	AdminStats(ctx context.Context) (*AdminStats, error)
}
