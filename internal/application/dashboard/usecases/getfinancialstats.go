package usecases

import (
	"context"

	"rentora/internal/domain/stats"
	"rentora/internal/infrastructure/cache"
	"rentora/internal/shared/logger"
)

type GetFinancialStatsUseCase struct {
	statsRepo stats.Repository
	cache     *cache.StatsCache
	logger    logger.Interface
}

func NewGetFinancialStatsUseCase(statsRepo stats.Repository, statsCache *cache.StatsCache, logger logger.Interface) *GetFinancialStatsUseCase {
	return &GetFinancialStatsUseCase{statsRepo: statsRepo, cache: statsCache, logger: logger}
}

func (uc *GetFinancialStatsUseCase) Execute(ctx context.Context, tenantID uint) (*stats.FinancialStats, error) {
	var cached stats.FinancialStats
	if uc.cache.Get(ctx, "financial", tenantID, &cached) {
		return &cached, nil
	}

	out, err := uc.statsRepo.FinancialStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(ctx, "financial", tenantID, out)
	return out, nil
}
