package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rentora/internal/domain/fleet"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

// catalogRow is the shared row shape of the four lookup tables. brand_id
// only exists on vehicle_models and is selected conditionally.
type catalogRow struct {
	ID          uint
	TenantID    uint
	BrandID     uint
	Description string
	Active      bool
	CreatedAt   time.Time
}

var catalogTables = map[fleet.CatalogKind]string{
	fleet.CatalogVehicleType: "vehicle_types",
	fleet.CatalogBrand:       "brands",
	fleet.CatalogModel:       "vehicle_models",
	fleet.CatalogFuelType:    "fuel_types",
}

// CatalogRepositoryImpl implements fleet.CatalogRepository over the four
// lookup tables, dispatching on the catalog kind.
type CatalogRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCatalogRepository(db *gorm.DB, logger logger.Interface) fleet.CatalogRepository {
	return &CatalogRepositoryImpl{db: db, logger: logger}
}

func (r *CatalogRepositoryImpl) table(kind fleet.CatalogKind) (string, error) {
	name, ok := catalogTables[kind]
	if !ok {
		return "", errors.NewValidationError(fmt.Sprintf("unknown catalog kind: %s", kind))
	}
	return name, nil
}

func (r *CatalogRepositoryImpl) Create(ctx context.Context, item *fleet.CatalogItem) error {
	table, err := r.table(item.Kind)
	if err != nil {
		return err
	}

	row := catalogRow{
		TenantID:    item.TenantID,
		Description: item.Description,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
	}
	if item.Kind == fleet.CatalogModel {
		row.BrandID = item.BrandID
	}

	query := r.db.WithContext(ctx).Table(table)
	if item.Kind != fleet.CatalogModel {
		query = query.Omit("BrandID")
	}
	if err := query.Create(&row).Error; err != nil {
		r.logger.Errorw("failed to create catalog item", "kind", item.Kind, "tenant_id", item.TenantID, "error", err)
		return fmt.Errorf("failed to create %s: %w", item.Kind, err)
	}
	item.ID = row.ID

	r.logger.Infow("catalog item created", "kind", item.Kind, "id", item.ID, "tenant_id", item.TenantID)
	return nil
}

func (r *CatalogRepositoryImpl) GetByID(ctx context.Context, kind fleet.CatalogKind, id uint) (*fleet.CatalogItem, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}

	var row catalogRow
	query := r.db.WithContext(ctx).Table(table).Where("id = ?", id)
	if kind != fleet.CatalogModel {
		query = query.Select("id, tenant_id, description, active, created_at")
	}
	if err := query.First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("%s not found", kind))
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return catalogToDomain(kind, &row), nil
}

func (r *CatalogRepositoryImpl) List(ctx context.Context, kind fleet.CatalogKind, tenantID uint) ([]*fleet.CatalogItem, error) {
	table, err := r.table(kind)
	if err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Table(table).Where("active = ?", true)
	if tenantID != 0 {
		query = query.Where("tenant_id = ?", tenantID)
	}
	if kind != fleet.CatalogModel {
		query = query.Select("id, tenant_id, description, active, created_at")
	}

	var rows []catalogRow
	if err := query.Order("description").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	items := make([]*fleet.CatalogItem, 0, len(rows))
	for i := range rows {
		items = append(items, catalogToDomain(kind, &rows[i]))
	}
	return items, nil
}

func (r *CatalogRepositoryImpl) SoftDelete(ctx context.Context, kind fleet.CatalogKind, id uint) error {
	table, err := r.table(kind)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Table(table).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		r.logger.Errorw("failed to delete catalog item", "kind", kind, "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete %s: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("%s not found", kind))
	}
	return nil
}

func catalogToDomain(kind fleet.CatalogKind, row *catalogRow) *fleet.CatalogItem {
	return &fleet.CatalogItem{
		ID:          row.ID,
		TenantID:    row.TenantID,
		Kind:        kind,
		Description: row.Description,
		BrandID:     row.BrandID,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
	}
}
