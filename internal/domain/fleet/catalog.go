package fleet

import (
	"fmt"
	"strings"
	"time"
)

// CatalogKind identifies one of the four tenant-scoped lookup tables.
type CatalogKind string

const (
	CatalogVehicleType CatalogKind = "vehicle_type"
	CatalogBrand       CatalogKind = "brand"
	CatalogModel       CatalogKind = "model"
	CatalogFuelType    CatalogKind = "fuel_type"
)

func (k CatalogKind) IsValid() bool {
	switch k {
	case CatalogVehicleType, CatalogBrand, CatalogModel, CatalogFuelType:
		return true
	}
	return false
}

// CatalogItem is one entry of a lookup catalog (vehicle type, brand,
// model, fuel type). BrandID is set only for models.
type CatalogItem struct {
	ID          uint
	TenantID    uint
	Kind        CatalogKind
	Description string
	BrandID     uint
	Active      bool
	CreatedAt   time.Time
}

func NewCatalogItem(tenantID uint, kind CatalogKind, description string, brandID uint) (*CatalogItem, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid catalog kind: %s", kind)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if kind == CatalogModel && brandID == 0 {
		return nil, fmt.Errorf("models require a brand")
	}
	if kind != CatalogModel && brandID != 0 {
		return nil, fmt.Errorf("only models reference a brand")
	}

	return &CatalogItem{
		TenantID:    tenantID,
		Kind:        kind,
		Description: description,
		BrandID:     brandID,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (c *CatalogItem) SoftDelete() {
	c.Active = false
}
