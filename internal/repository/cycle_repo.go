package repository

import (
	"context"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"gorm.io/gorm"
)

// CycleRepository reads distribution cycles.
type CycleRepository interface {
	FindByID(ctx context.Context, id int64) (*model.DistributionCycle, error)
}

type cycleRepo struct{ db *gorm.DB }

func NewCycleRepository(db *gorm.DB) CycleRepository { return &cycleRepo{db: db} }

func (r *cycleRepo) FindByID(ctx context.Context, id int64) (*model.DistributionCycle, error) {
	var c model.DistributionCycle
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
