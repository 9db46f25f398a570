package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	Update(ctx context.Context, t *Tenant) error
	// Delete removes the tenant permanently. Tenants are the only
	// hard-deletable aggregate; only the superadmin may reach this.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*Tenant, error)
}
