package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantOverride is a hub-specific manual correction to a variant's stock,
// on-demand status or price. At most one override exists per (hub, variant)
// pair. All value fields are nullable: nil means "not overridden", which for
// OnDemand is a genuine third state with its own availability semantics.
type VariantOverride struct {
	ID          int64            `gorm:"primaryKey" json:"id"`
	HubID       int64            `gorm:"uniqueIndex:idx_hub_variant;not null" json:"hub_id"`
	VariantID   int64            `gorm:"uniqueIndex:idx_hub_variant;not null" json:"variant_id"`
	CountOnHand *int             `json:"count_on_hand"`
	OnDemand    *bool            `json:"on_demand"`
	Price       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	// Tags drives the hub's visibility rules (comma-separated).
	Tags      string `gorm:"default:''" json:"tags"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
