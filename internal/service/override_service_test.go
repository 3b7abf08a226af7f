package service

import (
	"context"
	"testing"

	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubOverrideRepo struct {
	rows   map[[2]int64]*model.VariantOverride
	nextID int64
}

func newStubOverrideRepo() *stubOverrideRepo {
	return &stubOverrideRepo{rows: make(map[[2]int64]*model.VariantOverride), nextID: 1}
}

func (r *stubOverrideRepo) Upsert(_ context.Context, o *model.VariantOverride) error {
	key := [2]int64{o.HubID, o.VariantID}
	if existing, ok := r.rows[key]; ok {
		o.ID = existing.ID
	} else {
		o.ID = r.nextID
		r.nextID++
	}
	copied := *o
	r.rows[key] = &copied
	return nil
}

func (r *stubOverrideRepo) Delete(_ context.Context, hubID, variantID int64) error {
	delete(r.rows, [2]int64{hubID, variantID})
	return nil
}

func (r *stubOverrideRepo) ListForHub(_ context.Context, hubID int64) ([]model.VariantOverride, error) {
	var out []model.VariantOverride
	for key, o := range r.rows {
		if key[0] == hubID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func TestOverrideUpsertRequiresHub(t *testing.T) {
	hubs := newStubHubRepo()
	svc := NewOverrideService(newStubOverrideRepo(), hubs, nil)

	_, err := svc.Upsert(context.Background(), 9, dto.UpsertOverrideRequest{VariantID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOverrideUpsertReplacesExistingRow(t *testing.T) {
	hubs := newStubHubRepo()
	hubs.hubs[1] = &model.Hub{ID: 1, Name: "Riverside"}
	repo := newStubOverrideRepo()
	svc := NewOverrideService(repo, hubs, nil)

	five := 5
	first, err := svc.Upsert(context.Background(), 1, dto.UpsertOverrideRequest{
		VariantID: 10, CountOnHand: &five,
	})
	require.NoError(t, err)
	require.NotNil(t, first.CountOnHand)
	assert.Equal(t, 5, *first.CountOnHand)

	// Second upsert for the same pair keeps the row identity and clears the
	// count back to unset.
	second, err := svc.Upsert(context.Background(), 1, dto.UpsertOverrideRequest{
		VariantID: 10, Tags: "member-only",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.CountOnHand)
	assert.Equal(t, "member-only", second.Tags)

	rows, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestOverrideDeleteRemovesRow(t *testing.T) {
	hubs := newStubHubRepo()
	hubs.hubs[1] = &model.Hub{ID: 1, Name: "Riverside"}
	repo := newStubOverrideRepo()
	svc := NewOverrideService(repo, hubs, nil)

	_, err := svc.Upsert(context.Background(), 1, dto.UpsertOverrideRequest{VariantID: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, 10))

	rows, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
