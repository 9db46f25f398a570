package usecases

import (
	"context"
	"time"

	"rentora/internal/domain/subscription"
	"rentora/internal/shared/logger"
)

// ExpireSubscriptionsUseCase is the scheduled job that marks active
// subscriptions expired once their end date passes. It implements
// scheduler.BatchJob.
type ExpireSubscriptionsUseCase struct {
	subRepo subscription.SubscriptionRepository
	logger  logger.Interface
}

func NewExpireSubscriptionsUseCase(subRepo subscription.SubscriptionRepository, logger logger.Interface) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{subRepo: subRepo, logger: logger}
}

func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	subs, err := uc.subRepo.ListExpirable(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := 0
	for _, s := range subs {
		if err := s.Expire(now); err != nil {
			continue
		}
		if err := uc.subRepo.Update(ctx, s); err != nil {
			uc.logger.Errorw("failed to expire subscription", "subscription_id", s.ID, "error", err)
			continue
		}
		expired++
		uc.logger.Infow("subscription expired", "subscription_id", s.ID, "tenant_id", s.TenantID)
	}
	return expired, nil
}
