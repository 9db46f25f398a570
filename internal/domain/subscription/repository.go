package subscription

import "context"

type PlanRepository interface {
	Create(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	// List returns all plans; activeOnly narrows to the public catalog.
	List(ctx context.Context, activeOnly bool) ([]*Plan, error)
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetActiveByTenant returns the tenant's active subscription or a
	// not-found error. Uniqueness is a query convention, not a constraint.
	GetActiveByTenant(ctx context.Context, tenantID uint) (*Subscription, error)
	List(ctx context.Context) ([]*Subscription, error)
	// ListExpirable returns active subscriptions whose end date has passed.
	ListExpirable(ctx context.Context) ([]*Subscription, error)
	// DeactivateActiveByTenant marks any currently active subscription of
	// the tenant inactive. Used when a new plan is assigned.
	DeactivateActiveByTenant(ctx context.Context, tenantID uint) error
}

type LimitsRepository interface {
	Create(ctx context.Context, l *Limits) error
	Update(ctx context.Context, l *Limits) error
	// GetByTenant returns (nil, nil) when the tenant has no limits row.
	GetByTenant(ctx context.Context, tenantID uint) (*Limits, error)
}
