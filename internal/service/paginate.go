package service

import "github.com/TuringTechX/openfoodnetwork/internal/model"

// DefaultPerPage is the catalog page size when the request does not ask for
// one.
const DefaultPerPage = 10

// Page slices an already ordered, filtered, materialized sequence. Page and
// size below 1 are normalized (page 1, DefaultPerPage); an out-of-range page
// yields an empty slice, never an error.
func Page[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// GroupByProduct indexes variants by parent product id, preserving traversal
// order within each group. Products absent from the input are absent from the
// map; consumers treat a missing key as an empty list.
func GroupByProduct(variants []model.Variant) map[int64][]model.Variant {
	grouped := make(map[int64][]model.Variant)
	for _, v := range variants {
		grouped[v.ProductID] = append(grouped[v.ProductID], v)
	}
	return grouped
}
