package model

import "time"

// Matched-variant visibility values for TagRule.
const (
	TagRuleVisible = "visible"
	TagRuleHidden  = "hidden"
)

// TagRule is a hub rule matching variants by their override tags:
//
//   - MatchedVisibility "hidden": customers carrying any of CustomerTags do
//     NOT see matched variants.
//   - MatchedVisibility "visible": ONLY customers carrying any of
//     CustomerTags see matched variants.
//
// Both tag fields are comma-separated lists.
type TagRule struct {
	ID                int64  `gorm:"primaryKey" json:"id"`
	HubID             int64  `gorm:"index;not null" json:"hub_id"`
	VariantTags       string `gorm:"not null" json:"variant_tags"`
	CustomerTags      string `gorm:"not null" json:"customer_tags"`
	MatchedVisibility string `gorm:"not null;default:'hidden'" json:"matched_visibility"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
