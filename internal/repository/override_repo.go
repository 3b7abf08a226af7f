package repository

import (
	"context"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OverrideRepository maintains hub variant overrides. The (hub_id, variant_id)
// unique index backs the at-most-one-override-per-pair invariant; Upsert
// replaces in place instead of erroring on the second write.
type OverrideRepository interface {
	Upsert(ctx context.Context, o *model.VariantOverride) error
	Delete(ctx context.Context, hubID, variantID int64) error
	ListForHub(ctx context.Context, hubID int64) ([]model.VariantOverride, error)
}

type overrideRepo struct{ db *gorm.DB }

func NewOverrideRepository(db *gorm.DB) OverrideRepository { return &overrideRepo{db: db} }

func (r *overrideRepo) Upsert(ctx context.Context, o *model.VariantOverride) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "hub_id"}, {Name: "variant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"count_on_hand", "on_demand", "price", "tags", "updated_at",
			}),
		}).
		Create(o).Error
}

func (r *overrideRepo) Delete(ctx context.Context, hubID, variantID int64) error {
	return r.db.WithContext(ctx).
		Where("hub_id = ? AND variant_id = ?", hubID, variantID).
		Delete(&model.VariantOverride{}).Error
}

func (r *overrideRepo) ListForHub(ctx context.Context, hubID int64) ([]model.VariantOverride, error) {
	var overrides []model.VariantOverride
	err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID).
		Order("variant_id").
		Find(&overrides).Error
	return overrides, err
}
