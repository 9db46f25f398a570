package usecases

import (
	"context"

	"rentora/internal/application/fleet/dto"
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type CreateCatalogItemCommand struct {
	TenantID    uint
	Kind        fleet.CatalogKind
	Description string
	BrandID     uint
}

// ManageCatalogUseCase covers the four lookup catalogs: create, list and
// soft delete.
type ManageCatalogUseCase struct {
	catalogRepo fleet.CatalogRepository
	logger      logger.Interface
}

func NewManageCatalogUseCase(catalogRepo fleet.CatalogRepository, logger logger.Interface) *ManageCatalogUseCase {
	return &ManageCatalogUseCase{catalogRepo: catalogRepo, logger: logger}
}

func (uc *ManageCatalogUseCase) Create(ctx context.Context, cmd CreateCatalogItemCommand) (*dto.CatalogItemDTO, error) {
	item, err := fleet.NewCatalogItem(cmd.TenantID, cmd.Kind, cmd.Description, cmd.BrandID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Kind == fleet.CatalogModel {
		brand, err := uc.catalogRepo.GetByID(ctx, fleet.CatalogBrand, cmd.BrandID)
		if err != nil {
			return nil, err
		}
		if brand.TenantID != cmd.TenantID {
			return nil, errors.NewNotFoundError("brand not found")
		}
	}

	if err := uc.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	uc.logger.Infow("catalog item added", "kind", cmd.Kind, "id", item.ID, "tenant_id", cmd.TenantID)
	return dto.FromCatalogItem(item), nil
}

func (uc *ManageCatalogUseCase) List(ctx context.Context, kind fleet.CatalogKind, tenantID uint) ([]*dto.CatalogItemDTO, error) {
	items, err := uc.catalogRepo.List(ctx, kind, tenantID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CatalogItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromCatalogItem(item))
	}
	return out, nil
}

func (uc *ManageCatalogUseCase) Delete(ctx context.Context, kind fleet.CatalogKind, id, tenantID uint) error {
	item, err := uc.catalogRepo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if tenantID != 0 && item.TenantID != tenantID {
		return errors.NewNotFoundError("catalog item not found")
	}

	if err := uc.catalogRepo.SoftDelete(ctx, kind, id); err != nil {
		return err
	}

	uc.logger.Infow("catalog item removed", "kind", kind, "id", id)
	return nil
}
