package service

import (
	"testing"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Concatenating every page reconstructs the original sequence exactly.
func TestPageConcatenationReconstructsSequence(t *testing.T) {
	for _, n := range []int{1, 3, 10, 27} {
		for _, perPage := range []int{1, 4, 10, 30} {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}

			var rebuilt []int
			for p := 1; ; p++ {
				page := Page(items, p, perPage)
				if len(page) == 0 {
					break
				}
				rebuilt = append(rebuilt, page...)
			}
			assert.Equal(t, items, rebuilt, "n=%d perPage=%d", n, perPage)
		}
	}
}

func TestPageOutOfRangeIsEmpty(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Empty(t, Page(items, 2, 10))
	assert.Empty(t, Page(items, 100, 1))
	assert.Empty(t, Page([]string{}, 1, 10))
}

func TestPageNormalizesBadArguments(t *testing.T) {
	items := []int{1, 2, 3}

	// page < 1 behaves as page 1; perPage < 1 falls back to the default.
	assert.Equal(t, []int{1, 2, 3}, Page(items, 0, DefaultPerPage))
	assert.Equal(t, []int{1, 2, 3}, Page(items, -2, 0))
	assert.Equal(t, []int{1}, Page(items, 1, 1))
}

func TestGroupByProductPreservesTraversalOrder(t *testing.T) {
	variants := []model.Variant{
		{ID: 5, ProductID: 2},
		{ID: 1, ProductID: 1},
		{ID: 3, ProductID: 2},
		{ID: 2, ProductID: 1},
	}

	grouped := GroupByProduct(variants)
	require.Len(t, grouped, 2)
	assert.Equal(t, []int64{1, 2}, variantIDs(grouped[1]))
	assert.Equal(t, []int64{5, 3}, variantIDs(grouped[2]))

	// Missing key reads as an empty list, not an error.
	assert.Empty(t, grouped[99])
}

func TestGroupByProductEmptyInput(t *testing.T) {
	grouped := GroupByProduct(nil)
	assert.Empty(t, grouped)
}

func variantIDs(vs []model.Variant) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}
