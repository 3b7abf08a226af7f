package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Variant is the sellable unit of a Product. CountOnHand and OnDemand are the
// raw stock state; the effective state at a hub is computed per query against
// the hub's VariantOverride and is never written back.
type Variant struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	ProductID   int64           `gorm:"index;not null" json:"product_id"`
	SupplierID  int64           `gorm:"index;not null" json:"supplier_id"`
	TaxonID     int64           `gorm:"index;not null" json:"taxon_id"`
	OnDemand    bool            `gorm:"not null;default:false" json:"on_demand"`
	CountOnHand int             `gorm:"not null;default:0" json:"count_on_hand"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// VariantWithOverride pairs a distributed variant with the hub's override row,
// if any. Override is nil for the plain stock path.
type VariantWithOverride struct {
	Variant  Variant
	Override *VariantOverride
}
