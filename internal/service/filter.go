package service

import (
	"context"
	"strings"

	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/model"
)

// AttributeFilter is the opaque generic-search collaborator: it narrows a
// product set by whatever attribute criteria the query carries. The catalog
// core only defines how its result combines with the supplier-property set.
type AttributeFilter interface {
	Apply(ctx context.Context, products []model.CatalogProduct, q dto.CatalogQuery) []model.CatalogProduct
}

type nameContainsFilter struct{}

// NewNameContainsFilter returns the default attribute filter: caseless
// substring match on product name, pass-through when the query is blank.
func NewNameContainsFilter() AttributeFilter { return nameContainsFilter{} }

func (nameContainsFilter) Apply(_ context.Context, products []model.CatalogProduct, q dto.CatalogQuery) []model.CatalogProduct {
	needle := strings.ToLower(strings.TrimSpace(q.NameCont))
	if needle == "" {
		return products
	}
	matched := make([]model.CatalogProduct, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// CombineResult is the outcome of merging the two filtered sets.
// UsedFallback marks rule 4: the supplier-property filter matched nothing and
// the attribute set was returned unchanged.
type CombineResult struct {
	Products     []model.CatalogProduct
	UsedFallback bool
}

// Combine merges the attribute-filtered set with the supplier-property-
// filtered set. Rules, in order:
//
//  1. No supplier-property filter requested: attribute set unchanged.
//  2. Property set non-empty and the with_properties key present: union (OR).
//  3. Property set non-empty otherwise: intersection (AND).
//  4. Property set empty: attribute set unchanged, flagged as fallback.
//
// The OR/AND asymmetry is deliberate: property filters add results only when
// explicitly combined with the match-any-property flag, and restrict
// otherwise. An empty property set takes the rule-4 fallback even when the
// with_properties flag is set: the flag switches the semantics of a non-empty
// property result, it never unions in an empty one. Order of the attribute
// set is preserved throughout; union appends the property-only products
// after it.
func Combine(attr, supplierProp []model.CatalogProduct, propertyFilterRequested, withProperties bool) CombineResult {
	if !propertyFilterRequested {
		return CombineResult{Products: attr}
	}

	if len(supplierProp) > 0 && withProperties {
		seen := make(map[int64]struct{}, len(attr))
		union := make([]model.CatalogProduct, 0, len(attr)+len(supplierProp))
		for _, p := range attr {
			seen[p.ID] = struct{}{}
			union = append(union, p)
		}
		for _, p := range supplierProp {
			if _, dup := seen[p.ID]; !dup {
				seen[p.ID] = struct{}{}
				union = append(union, p)
			}
		}
		return CombineResult{Products: union}
	}

	if len(supplierProp) > 0 {
		inProp := make(map[int64]struct{}, len(supplierProp))
		for _, p := range supplierProp {
			inProp[p.ID] = struct{}{}
		}
		intersection := make([]model.CatalogProduct, 0, len(attr))
		for _, p := range attr {
			if _, ok := inProp[p.ID]; ok {
				intersection = append(intersection, p)
			}
		}
		return CombineResult{Products: intersection}
	}

	return CombineResult{Products: attr, UsedFallback: true}
}
