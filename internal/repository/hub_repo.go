package repository

import (
	"context"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"gorm.io/gorm"
)

// HubRepository reads hubs and their hub-scoped visibility data.
type HubRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Hub, error)
	TagRulesForHub(ctx context.Context, hubID int64) ([]model.TagRule, error)
	FindCustomer(ctx context.Context, id int64) (*model.Customer, error)
}

type hubRepo struct{ db *gorm.DB }

func NewHubRepository(db *gorm.DB) HubRepository { return &hubRepo{db: db} }

func (r *hubRepo) FindByID(ctx context.Context, id int64) (*model.Hub, error) {
	var h model.Hub
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hubRepo) TagRulesForHub(ctx context.Context, hubID int64) ([]model.TagRule, error) {
	var rules []model.TagRule
	err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID).
		Order("id").
		Find(&rules).Error
	return rules, err
}

func (r *hubRepo) FindCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
