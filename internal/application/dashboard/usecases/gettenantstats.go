// Package usecases serves the dashboard read models through the short-TTL
// stats cache.
package usecases

import (
	"context"

	"rentora/internal/domain/stats"
	"rentora/internal/infrastructure/cache"
	"rentora/internal/shared/logger"
)

type GetTenantStatsUseCase struct {
	statsRepo stats.Repository
	cache     *cache.StatsCache
	logger    logger.Interface
}

func NewGetTenantStatsUseCase(statsRepo stats.Repository, statsCache *cache.StatsCache, logger logger.Interface) *GetTenantStatsUseCase {
	return &GetTenantStatsUseCase{statsRepo: statsRepo, cache: statsCache, logger: logger}
}

func (uc *GetTenantStatsUseCase) Execute(ctx context.Context, tenantID uint) (*stats.TenantStats, error) {
	var cached stats.TenantStats
	if uc.cache.Get(ctx, "tenant", tenantID, &cached) {
		return &cached, nil
	}

	out, err := uc.statsRepo.TenantStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(ctx, "tenant", tenantID, out)
	return out, nil
}
