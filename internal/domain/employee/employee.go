// Package employee holds the tenant's rental staff.
package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentora/internal/shared/validation"
)

// WorkShift is the employee's assigned shift.
type WorkShift string

const (
	ShiftMorning WorkShift = "Matutina"
	ShiftEvening WorkShift = "Vespertina"
	ShiftNight   WorkShift = "Nocturna"
)

func (s WorkShift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

type Employee struct {
	ID                uint
	TenantID          uint
	Name              string
	Cedula            string
	WorkShift         WorkShift
	CommissionPercent float64
	HireDate          time.Time
	Phone             string
	Address           string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewEmployee(tenantID uint, name, cedula string, shift WorkShift, commissionPercent float64, hireDate time.Time) (*Employee, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("employee name is required")
	}
	if !validation.ValidateCedula(cedula) {
		return nil, fmt.Errorf("invalid cedula: %s", cedula)
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid work shift: %s", shift)
	}
	if commissionPercent < 0 || commissionPercent > 100 {
		return nil, fmt.Errorf("commission percent must be between 0 and 100")
	}

	now := time.Now().UTC()
	return &Employee{
		TenantID:          tenantID,
		Name:              name,
		Cedula:            validation.FormatCedula(cedula),
		WorkShift:         shift,
		CommissionPercent: commissionPercent,
		HireDate:          hireDate,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (e *Employee) SoftDelete() {
	e.Active = false
	e.UpdatedAt = time.Now().UTC()
}

type Filter struct {
	TenantID uint
	Search   string
}

type Repository interface {
	// Create inserts the employee and increments the tenant's employee
	// counter in the same transaction.
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	List(ctx context.Context, filter Filter) ([]*Employee, error)
	// SoftDelete marks the employee inactive and decrements the tenant's
	// employee counter in the same transaction.
	SoftDelete(ctx context.Context, id uint) error
}
