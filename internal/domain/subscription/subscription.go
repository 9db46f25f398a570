package subscription

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Subscription links a tenant to a plan. One active subscription per
// tenant is expected; assigning a new plan deactivates the previous one.
type Subscription struct {
	ID        uint
	TenantID  uint
	PlanID    uint
	Status    Status
	StartsAt  time.Time
	EndsAt    *time.Time
	AutoRenew bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSubscription(tenantID, planID uint, startsAt time.Time, endsAt *time.Time, autoRenew bool) (*Subscription, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if endsAt != nil && !endsAt.After(startsAt) {
		return nil, fmt.Errorf("subscription end must be after start")
	}

	now := time.Now().UTC()
	return &Subscription{
		TenantID:  tenantID,
		PlanID:    planID,
		Status:    StatusActive,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		AutoRenew: autoRenew,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *Subscription) Cancel() error {
	if s.Status != StatusActive {
		return fmt.Errorf("only active subscriptions can be cancelled, current status: %s", s.Status)
	}
	s.Status = StatusCancelled
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *Subscription) Deactivate() {
	s.Status = StatusInactive
	s.UpdatedAt = time.Now().UTC()
}

// Expire marks the subscription expired once its end date has passed.
func (s *Subscription) Expire(now time.Time) error {
	if s.Status != StatusActive {
		return fmt.Errorf("only active subscriptions can expire, current status: %s", s.Status)
	}
	if s.EndsAt == nil || s.EndsAt.After(now) {
		return fmt.Errorf("subscription has not reached its end date")
	}
	s.Status = StatusExpired
	s.UpdatedAt = time.Now().UTC()
	return nil
}
