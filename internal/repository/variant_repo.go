package repository

import (
	"context"

	"github.com/TuringTechX/openfoodnetwork/internal/availability"
	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"gorm.io/gorm"
)

// VariantRepository resolves the candidate variant set for a (cycle, hub)
// pair. The availability predicate runs inside Postgres: the expression tree
// in internal/availability is rendered to SQL, never re-stated here.
type VariantRepository interface {
	// DistributedVariants returns the distinct purchasable variants the hub
	// distributes in the cycle, each paired with its hub override if one
	// exists. Works with zero override rows (plain stock path).
	DistributedVariants(ctx context.Context, cycleID, hubID int64) ([]model.VariantWithOverride, error)
}

type variantRepo struct{ db *gorm.DB }

func NewVariantRepository(db *gorm.DB) VariantRepository { return &variantRepo{db: db} }

func (r *variantRepo) DistributedVariants(ctx context.Context, cycleID, hubID int64) ([]model.VariantWithOverride, error) {
	var variants []model.Variant
	err := r.db.WithContext(ctx).
		Model(&model.Variant{}).
		Distinct("variants.*").
		Joins("JOIN exchanges ON exchanges.variant_id = variants.id AND exchanges.cycle_id = ? AND exchanges.hub_id = ?",
			cycleID, hubID).
		Joins("LEFT JOIN variant_overrides ON variant_overrides.variant_id = variants.id AND variant_overrides.hub_id = ?",
			hubID).
		Where(availability.Stocked.SQL()).
		Order("variants.id").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(variants))
	for i, v := range variants {
		ids[i] = v.ID
	}

	var overrides []model.VariantOverride
	err = r.db.WithContext(ctx).
		Where("hub_id = ? AND variant_id IN ?", hubID, ids).
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}

	byVariant := make(map[int64]*model.VariantOverride, len(overrides))
	for i := range overrides {
		byVariant[overrides[i].VariantID] = &overrides[i]
	}

	result := make([]model.VariantWithOverride, len(variants))
	for i, v := range variants {
		result[i] = model.VariantWithOverride{Variant: v, Override: byVariant[v.ID]}
	}
	return result, nil
}
