package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentora/internal/domain/stats"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/constants"
	"rentora/internal/shared/logger"
)

// StatsRepositoryImpl implements stats.Repository with aggregate queries
// over the other contexts' tables. Income windows are bounded in UTC
// after converting the business-timezone day edges.
type StatsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStatsRepository(db *gorm.DB, logger logger.Interface) stats.Repository {
	return &StatsRepositoryImpl{db: db, logger: logger}
}

func (r *StatsRepositoryImpl) TenantStats(ctx context.Context, tenantID uint) (*stats.TenantStats, error) {
	db := r.db.WithContext(ctx)
	out := &stats.TenantStats{}

	vehicles := db.Model(&models.VehicleModel{}).Where("tenant_id = ? AND active = ?", tenantID, true)
	if err := vehicles.Count(&out.TotalVehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}
	if err := db.Model(&models.VehicleModel{}).
		Where("tenant_id = ? AND active = ? AND available = ?", tenantID, true, true).
		Count(&out.AvailableVehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to count available vehicles: %w", err)
	}
	if err := db.Model(&models.ClientModel{}).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Count(&out.ActiveClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	if err := db.Model(&models.EmployeeModel{}).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Count(&out.ActiveEmployees).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if err := db.Model(&models.RentalModel{}).
		Where("tenant_id = ? AND active = ? AND status = ?", tenantID, true, constants.RentalStatusActive).
		Count(&out.ActiveRentals).Error; err != nil {
		return nil, fmt.Errorf("failed to count active rentals: %w", err)
	}

	now := time.Now()
	dayStart := biztime.StartOfDayUTC(now)
	dayEnd := biztime.EndOfDayUTC(now)

	if err := db.Model(&models.RentalModel{}).
		Where("tenant_id = ? AND active = ? AND rental_date BETWEEN ? AND ?", tenantID, true, dayStart, dayEnd).
		Count(&out.RentalsToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's rentals: %w", err)
	}

	var err error
	if out.IncomeTodayCents, err = r.incomeBetween(ctx, tenantID, dayStart, dayEnd); err != nil {
		return nil, err
	}
	if out.IncomeWeekCents, err = r.incomeSince(ctx, tenantID, 7); err != nil {
		return nil, err
	}
	if out.IncomeMonthCents, err = r.incomeSince(ctx, tenantID, 30); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *StatsRepositoryImpl) FinancialStats(ctx context.Context, tenantID uint) (*stats.FinancialStats, error) {
	out := &stats.FinancialStats{}

	now := time.Now()
	var err error
	if out.IncomeTodayCents, err = r.incomeBetween(ctx, tenantID, biztime.StartOfDayUTC(now), biztime.EndOfDayUTC(now)); err != nil {
		return nil, err
	}
	if out.IncomeWeekCents, err = r.incomeSince(ctx, tenantID, 7); err != nil {
		return nil, err
	}
	if out.IncomeMonthCents, err = r.incomeSince(ctx, tenantID, 30); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&models.RentalModel{}).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&out.TotalRevenueCents).Error; err != nil {
		return nil, fmt.Errorf("failed to sum total revenue: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.RentalModel{}).
		Where("tenant_id = ? AND active = ? AND status IN ?", tenantID, true, []string{constants.RentalStatusActive, constants.RentalStatusOverdue}).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&out.OpenRentalCents).Error; err != nil {
		return nil, fmt.Errorf("failed to sum open rentals: %w", err)
	}
	return out, nil
}

func (r *StatsRepositoryImpl) AdminStats(ctx context.Context) (*stats.AdminStats, error) {
	db := r.db.WithContext(ctx)
	out := &stats.AdminStats{PlanBreakdown: []stats.PlanCount{}}

	if err := db.Model(&models.TenantModel{}).Count(&out.Tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to count tenants: %w", err)
	}
	if err := db.Model(&models.SubscriptionModel{}).
		Where("status = ?", constants.SubscriptionStatusActive).
		Count(&out.ActiveSubscriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	rows := []struct {
		PlanID   uint
		PlanName string
		Count    int64
		USDCents int64
	}{}
	err := db.Model(&models.SubscriptionModel{}).
		Select("tenant_subscriptions.plan_id AS plan_id, subscription_plans.name AS plan_name, COUNT(*) AS count, COALESCE(SUM(subscription_plans.price_usd_cents), 0) AS usd_cents").
		Joins("JOIN subscription_plans ON subscription_plans.id = tenant_subscriptions.plan_id").
		Where("tenant_subscriptions.status = ?", constants.SubscriptionStatusActive).
		Group("tenant_subscriptions.plan_id, subscription_plans.name").
		Order("count DESC, plan_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build plan breakdown: %w", err)
	}
	for _, row := range rows {
		out.PlanBreakdown = append(out.PlanBreakdown, stats.PlanCount{
			PlanID:   row.PlanID,
			PlanName: row.PlanName,
			Count:    row.Count,
		})
		out.MRRUSDCents += row.USDCents
	}
	return out, nil
}

func (r *StatsRepositoryImpl) incomeBetween(ctx context.Context, tenantID uint, from, to time.Time) (int64, error) {
	var cents int64
	err := r.db.WithContext(ctx).Model(&models.RentalModel{}).
		Where("tenant_id = ? AND active = ? AND rental_date BETWEEN ? AND ?", tenantID, true, from, to).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&cents).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum rental income: %w", err)
	}
	return cents, nil
}

// incomeSince sums income over a rolling lookback window of n days ending
// now, matching the dashboard's week/month semantics.
func (r *StatsRepositoryImpl) incomeSince(ctx context.Context, tenantID uint, days int) (int64, error) {
	from, err := biztime.ParseDate(biztime.DaysAgoDate(days))
	if err != nil {
		return 0, err
	}
	var cents int64
	err = r.db.WithContext(ctx).Model(&models.RentalModel{}).
		Where("tenant_id = ? AND active = ? AND rental_date >= ?", tenantID, true, from).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&cents).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum rental income: %w", err)
	}
	return cents, nil
}
