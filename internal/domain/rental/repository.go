package rental

import (
	"context"
	"time"
)

// Filter narrows rental listings and reports. TenantID zero means
// unscoped (superadmin only). From/To bound RentalDate inclusively.
type Filter struct {
	TenantID   uint
	Status     Status
	ClientID   uint
	EmployeeID uint
	From       time.Time
	To         time.Time
	Search     string
}

type Repository interface {
	// Create inserts the rental, assigns its number from the tenant's
	// sequence, and marks the vehicle unavailable, all in one
	// transaction. The vehicle row is locked first; creation fails if it
	// is inactive or already out.
	Create(ctx context.Context, r *Rental) error

	// Return persists a completed MarkReturned transition and restores
	// the vehicle's availability in the same transaction.
	Return(ctx context.Context, r *Rental) error

	Update(ctx context.Context, r *Rental) error
	GetByID(ctx context.Context, id uint) (*Rental, error)
	List(ctx context.Context, filter Filter) ([]*Rental, error)

	// ListOverdueCandidates returns active rentals whose scheduled
	// return is before the cutoff.
	ListOverdueCandidates(ctx context.Context, cutoff time.Time) ([]*Rental, error)
}
