// Package client holds the rental customers of a tenant.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentora/internal/shared/validation"
)

type PersonType string

const (
	PersonNatural PersonType = "Física"
	PersonLegal   PersonType = "Jurídica"
)

func (p PersonType) IsValid() bool {
	return p == PersonNatural || p == PersonLegal
}

// Client is tenant-scoped. The cedula is checksum-validated and unique
// within the tenant. CreditLimitCents is the customer's credit cap in
// cents.
type Client struct {
	ID               uint
	TenantID         uint
	Name             string
	Cedula           string
	CreditCardNumber string
	CreditLimitCents int64
	PersonType       PersonType
	Phone            string
	Address          string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewClient(tenantID uint, name, cedula string, creditLimitCents int64, personType PersonType) (*Client, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	if !validation.ValidateCedula(cedula) {
		return nil, fmt.Errorf("invalid cedula: %s", cedula)
	}
	if creditLimitCents < 0 {
		return nil, fmt.Errorf("credit limit cannot be negative")
	}
	if !personType.IsValid() {
		return nil, fmt.Errorf("invalid person type: %s", personType)
	}

	now := time.Now().UTC()
	return &Client{
		TenantID:         tenantID,
		Name:             name,
		Cedula:           validation.FormatCedula(cedula),
		CreditLimitCents: creditLimitCents,
		PersonType:       personType,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (c *Client) SoftDelete() {
	c.Active = false
	c.UpdatedAt = time.Now().UTC()
}

// Filter narrows client listings.
type Filter struct {
	TenantID uint
	Search   string
}

type Repository interface {
	// Create inserts the client and increments the tenant's client
	// counter in the same transaction.
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	// ExistsByCedula checks tenant-scoped cedula uniqueness, optionally
	// excluding one client (for updates).
	ExistsByCedula(ctx context.Context, tenantID uint, cedula string, excludeID uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Client, error)
	// SoftDelete marks the client inactive and decrements the tenant's
	// client counter in the same transaction.
	SoftDelete(ctx context.Context, id uint) error
}
