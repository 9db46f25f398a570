package usecases

import (
	"context"

	"rentora/internal/domain/stats"
	"rentora/internal/infrastructure/cache"
	"rentora/internal/shared/logger"
)

// GetAdminStatsUseCase is the superadmin's cross-tenant view; it caches
// under tenant ID zero since the figures are global.
type GetAdminStatsUseCase struct {
	statsRepo stats.Repository
	cache     *cache.StatsCache
	logger    logger.Interface
}

func NewGetAdminStatsUseCase(statsRepo stats.Repository, statsCache *cache.StatsCache, logger logger.Interface) *GetAdminStatsUseCase {
	return &GetAdminStatsUseCase{statsRepo: statsRepo, cache: statsCache, logger: logger}
}

func (uc *GetAdminStatsUseCase) Execute(ctx context.Context) (*stats.AdminStats, error) {
	var cached stats.AdminStats
	if uc.cache.Get(ctx, "admin", 0, &cached) {
		return &cached, nil
	}

	out, err := uc.statsRepo.AdminStats(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(ctx, "admin", 0, out)
	return out, nil
}
