// Package seeds loads the embedded default data: the global plan catalog
// and the starter lookup catalogs copied into each new tenant.
package seeds

import (
	"context"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"rentora/internal/domain/fleet"
	"rentora/internal/domain/subscription"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

//go:embed data/*.yaml
var dataFS embed.FS

type catalogData struct {
	VehicleTypes []string `yaml:"vehicle_types"`
	FuelTypes    []string `yaml:"fuel_types"`
	Brands       []struct {
		Name   string   `yaml:"name"`
		Models []string `yaml:"models"`
	} `yaml:"brands"`
}

type planData struct {
	Plans []struct {
		Name          string   `yaml:"name"`
		Description   string   `yaml:"description"`
		PriceUSDCents int64    `yaml:"price_usd_cents"`
		PriceDOPCents int64    `yaml:"price_dop_cents"`
		VehicleLimit  *int     `yaml:"vehicle_limit"`
		ClientLimit   *int     `yaml:"client_limit"`
		EmployeeLimit *int     `yaml:"employee_limit"`
		Features      []string `yaml:"features"`
	} `yaml:"plans"`
}

func loadCatalogData() (*catalogData, error) {
	raw, err := dataFS.ReadFile("data/catalogs.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed data: %w", err)
	}
	var data catalogData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed data: %w", err)
	}
	return &data, nil
}

// SeedTenantCatalogs copies the starter lookup catalogs into a freshly
// created tenant so vehicle registration works immediately.
func SeedTenantCatalogs(ctx context.Context, repo fleet.CatalogRepository, tenantID uint, log logger.Interface) error {
	data, err := loadCatalogData()
	if err != nil {
		return err
	}

	for _, name := range data.VehicleTypes {
		item, err := fleet.NewCatalogItem(tenantID, fleet.CatalogVehicleType, name, 0)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
	}

	for _, name := range data.FuelTypes {
		item, err := fleet.NewCatalogItem(tenantID, fleet.CatalogFuelType, name, 0)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
	}

	for _, brand := range data.Brands {
		item, err := fleet.NewCatalogItem(tenantID, fleet.CatalogBrand, brand.Name, 0)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
		for _, model := range brand.Models {
			m, err := fleet.NewCatalogItem(tenantID, fleet.CatalogModel, model, item.ID)
			if err != nil {
				return err
			}
			if err := repo.Create(ctx, m); err != nil {
				return err
			}
		}
	}

	log.Infow("tenant catalogs seeded", "tenant_id", tenantID)
	return nil
}

// SeedPlans creates the default plan catalog, skipping plans that already
// exist.
func SeedPlans(ctx context.Context, repo subscription.PlanRepository, log logger.Interface) error {
	raw, err := dataFS.ReadFile("data/plans.yaml")
	if err != nil {
		return fmt.Errorf("failed to read plan seed data: %w", err)
	}
	var data planData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse plan seed data: %w", err)
	}

	for _, entry := range data.Plans {
		plan, err := subscription.NewPlan(entry.Name, entry.Description, entry.PriceUSDCents, entry.PriceDOPCents)
		if err != nil {
			return err
		}
		if err := plan.SetLimits(entry.VehicleLimit, entry.ClientLimit, entry.EmployeeLimit); err != nil {
			return err
		}
		plan.Features = entry.Features

		if err := repo.Create(ctx, plan); err != nil {
			if errors.IsConflictError(err) {
				continue
			}
			return err
		}
		log.Infow("plan seeded", "name", plan.Name)
	}
	return nil
}
