package fleet

import "context"

// VehicleFilter narrows vehicle listings. TenantID zero means unscoped
// (superadmin only).
type VehicleFilter struct {
	TenantID      uint
	AvailableOnly bool
	Search        string
}

type VehicleRepository interface {
	Create(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id uint) (*Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]*Vehicle, error)
	// SoftDelete marks the vehicle inactive and decrements the tenant's
	// vehicle counter in the same transaction.
	SoftDelete(ctx context.Context, id uint) error
}

type CatalogRepository interface {
	Create(ctx context.Context, item *CatalogItem) error
	GetByID(ctx context.Context, kind CatalogKind, id uint) (*CatalogItem, error)
	List(ctx context.Context, kind CatalogKind, tenantID uint) ([]*CatalogItem, error)
	SoftDelete(ctx context.Context, kind CatalogKind, id uint) error
}
