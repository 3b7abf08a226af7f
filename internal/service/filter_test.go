package service

import (
	"context"
	"testing"

	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"github.com/stretchr/testify/assert"
)

func ids(ps []model.CatalogProduct) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestCombineNoPropertyFilterReturnsAttributeSet(t *testing.T) {
	attr := []model.CatalogProduct{product(1, "A", 1, 1), product(2, "B", 1, 1)}

	got := Combine(attr, nil, false, false)
	assert.Equal(t, []int64{1, 2}, ids(got.Products))
	assert.False(t, got.UsedFallback)
}

// Property filter non-empty + with_properties flag: union (OR), even when the
// attribute set is empty.
func TestCombineWithPropertiesIsUnion(t *testing.T) {
	attr := []model.CatalogProduct{product(1, "A", 1, 1), product(2, "B", 1, 1)}
	prop := []model.CatalogProduct{product(2, "B", 1, 1), product(3, "C", 2, 1)}

	got := Combine(attr, prop, true, true)
	assert.Equal(t, []int64{1, 2, 3}, ids(got.Products))
	assert.False(t, got.UsedFallback)

	got = Combine(nil, prop, true, true)
	assert.Equal(t, []int64{2, 3}, ids(got.Products))
}

// Union membership is commutative even though ordering follows the attribute
// set first.
func TestCombineUnionMembershipIsCommutative(t *testing.T) {
	a := []model.CatalogProduct{product(1, "A", 1, 1), product(2, "B", 1, 1)}
	b := []model.CatalogProduct{product(3, "C", 2, 1), product(2, "B", 1, 1)}

	ab := Combine(a, b, true, true)
	ba := Combine(b, a, true, true)
	assert.ElementsMatch(t, ids(ab.Products), ids(ba.Products))
}

func TestCombineWithoutFlagIsIntersection(t *testing.T) {
	attr := []model.CatalogProduct{product(1, "A", 1, 1), product(2, "B", 1, 1), product(3, "C", 2, 1)}
	prop := []model.CatalogProduct{product(3, "C", 2, 1), product(1, "A", 1, 1)}

	got := Combine(attr, prop, true, false)
	assert.Equal(t, []int64{1, 3}, ids(got.Products))
	assert.False(t, got.UsedFallback)
}

// Empty property result without the flag: documented fallback to the
// attribute set, flagged so callers can detect the path taken.
func TestCombineEmptyPropertySetFallsBack(t *testing.T) {
	attr := []model.CatalogProduct{product(1, "A", 1, 1)}

	got := Combine(attr, nil, true, false)
	assert.Equal(t, []int64{1}, ids(got.Products))
	assert.True(t, got.UsedFallback)

	// with_properties set but nothing matched: same fallback.
	got = Combine(attr, nil, true, true)
	assert.Equal(t, []int64{1}, ids(got.Products))
	assert.True(t, got.UsedFallback)
}

func TestNameContainsFilter(t *testing.T) {
	f := NewNameContainsFilter()
	products := []model.CatalogProduct{
		product(1, "Sourdough Bread", 1, 1),
		product(2, "Rye Bread", 1, 1),
		product(3, "Butter", 2, 1),
	}

	got := f.Apply(context.Background(), products, dto.CatalogQuery{NameCont: "bread"})
	assert.Equal(t, []int64{1, 2}, ids(got))

	// Blank query passes everything through untouched.
	got = f.Apply(context.Background(), products, dto.CatalogQuery{})
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}
