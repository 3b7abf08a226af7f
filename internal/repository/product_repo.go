package repository

import (
	"context"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"gorm.io/gorm"
)

// ProductRepository projects the available-variant set onto products,
// annotated with the first-variant secondary attributes used for filtering
// and ordering.
type ProductRepository interface {
	// CatalogProducts returns the products whose ids appear in productIDs,
	// annotated with the supplier and taxon of their first variant. The
	// first variant is the lowest-id member of variantIDs per product, so
	// the annotation only ever derives from variants that are actually
	// available at the hub. orderBySQL comes from service.Ordering and
	// contains no user-supplied text.
	CatalogProducts(ctx context.Context, productIDs, variantIDs []int64, orderBySQL string) ([]model.CatalogProduct, error)

	// SupplierIDsWithProperties returns the suppliers carrying at least one
	// of the given property ids with inherits_properties set.
	SupplierIDsWithProperties(ctx context.Context, propertyIDs []int64) ([]int64, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) CatalogProducts(ctx context.Context, productIDs, variantIDs []int64, orderBySQL string) ([]model.CatalogProduct, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	var rows []model.CatalogProduct
	err := r.db.WithContext(ctx).
		Table("products").
		Select("products.*, first_variant.supplier_id AS first_supplier_id, first_variant.taxon_id AS first_taxon_id").
		Joins(`LEFT JOIN (
			SELECT DISTINCT ON (product_id) product_id, id, supplier_id, taxon_id
			FROM variants
			WHERE deleted_at IS NULL AND id IN ?
			ORDER BY product_id, id
		) first_variant ON first_variant.product_id = products.id`, variantIDs).
		Where("products.id IN ?", productIDs).
		Order(orderBySQL).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *productRepo) SupplierIDsWithProperties(ctx context.Context, propertyIDs []int64) ([]int64, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.SupplierProperty{}).
		Distinct("supplier_id").
		Where("property_id IN ? AND inherits_properties = true", propertyIDs).
		Pluck("supplier_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
