package dto

import "github.com/shopspring/decimal"

// UpsertOverrideRequest creates or replaces the override for one
// (hub, variant) pair. Omitted fields stay unset (tri-state semantics).
type UpsertOverrideRequest struct {
	VariantID   int64            `json:"variant_id" validate:"required,gt=0"`
	CountOnHand *int             `json:"count_on_hand" validate:"omitempty,gte=0"`
	OnDemand    *bool            `json:"on_demand"`
	Price       *decimal.Decimal `json:"price"`
	Tags        string           `json:"tags"`
}

// OverrideResponse mirrors the stored override row.
type OverrideResponse struct {
	ID          int64            `json:"id"`
	HubID       int64            `json:"hub_id"`
	VariantID   int64            `json:"variant_id"`
	CountOnHand *int             `json:"count_on_hand"`
	OnDemand    *bool            `json:"on_demand"`
	Price       *decimal.Decimal `json:"price"`
	Tags        string           `json:"tags"`
}
