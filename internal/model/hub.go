package model

import "time"

// Product sorting methods a hub can configure for its shopfront.
const (
	SortByName     = "by_name"
	SortByProducer = "by_producer"
	SortByCategory = "by_category"
)

// Hub is a distribution point through which products reach customers.
// ProducerOrder and TaxonOrder are comma-separated id lists; each is only
// consulted when SortingMethod selects it, and a blank or malformed list
// falls back to the default name ordering.
type Hub struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	SortingMethod string `gorm:"not null;default:'by_name'" json:"sorting_method"`
	ProducerOrder string `gorm:"default:''" json:"producer_order"`
	TaxonOrder    string `gorm:"default:''" json:"taxon_order"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
