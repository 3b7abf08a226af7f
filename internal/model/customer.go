package model

import "time"

// Customer narrows catalog visibility through the hub's tag rules.
// Tags is a comma-separated list.
type Customer struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	HubID     int64  `gorm:"index;not null" json:"hub_id"`
	Tags      string `gorm:"default:''" json:"tags"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
