package service

import "github.com/TuringTechX/openfoodnetwork/internal/model"

// ScopeVariantToHub returns a copy of the variant with the hub's override
// applied to its rendered fields: count on hand, on-demand and price each
// take the override value when set. The stored variant is never mutated;
// effective state is recomputed per query.
func ScopeVariantToHub(v model.Variant, o *model.VariantOverride) model.Variant {
	if o == nil {
		return v
	}
	if o.CountOnHand != nil {
		v.CountOnHand = *o.CountOnHand
	}
	if o.OnDemand != nil {
		v.OnDemand = *o.OnDemand
	}
	if o.Price != nil {
		v.Price = *o.Price
	}
	return v
}
