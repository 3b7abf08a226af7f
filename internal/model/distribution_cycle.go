package model

import "time"

// DistributionCycle is a bounded period during which a fixed variant set is
// available through the hubs attached to it.
type DistributionCycle struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	OpensAt   time.Time `json:"opens_at"`
	ClosesAt  time.Time `json:"closes_at"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Exchange attaches one variant to one hub within a cycle. The set of
// exchanges for (cycle, hub) is the "variants distributed by hub X" query
// that the whole catalog pipeline starts from.
type Exchange struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	CycleID   int64 `gorm:"uniqueIndex:idx_cycle_hub_variant;not null" json:"cycle_id"`
	HubID     int64 `gorm:"uniqueIndex:idx_cycle_hub_variant;not null" json:"hub_id"`
	VariantID int64 `gorm:"uniqueIndex:idx_cycle_hub_variant;not null" json:"variant_id"`
	CreatedAt time.Time
}
