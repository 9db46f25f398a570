package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type MembershipRepository interface {
	Create(ctx context.Context, m *Membership) error
	Update(ctx context.Context, m *Membership) error
	// GetActiveByUser returns (nil, nil) when the user has no active
	// membership; the caller decides whether that fails closed.
	GetActiveByUser(ctx context.Context, userID uint) (*Membership, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*Membership, error)
}
