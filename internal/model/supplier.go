package model

import "time"

// Supplier is the producer enterprise behind a variant.
type Supplier struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierProperty associates a property with a supplier. Only rows with
// InheritsProperties set participate in product filtering: the property is
// considered to apply to every product of that supplier.
type SupplierProperty struct {
	ID                 int64 `gorm:"primaryKey" json:"id"`
	SupplierID         int64 `gorm:"uniqueIndex:idx_supplier_property;not null" json:"supplier_id"`
	PropertyID         int64 `gorm:"uniqueIndex:idx_supplier_property;not null" json:"property_id"`
	InheritsProperties bool  `gorm:"not null;default:true" json:"inherits_properties"`
	CreatedAt          time.Time
}
