package model

import "time"

// Product is a catalog item. Its "primary" taxon and supplier are never
// stored here: they are derived per query from the product's first variant
// (see CatalogProduct).
type Product struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"index;not null" json:"name"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Variants []Variant `gorm:"foreignKey:ProductID" json:"-"`
}

// CatalogProduct is a Product annotated with the secondary attribute of its
// first variant. The representative variant is the one with the lowest id
// among the variants considered by the query; the tie-break is fixed so that
// products whose variants disagree on taxon or supplier still annotate
// deterministically.
type CatalogProduct struct {
	Product         `gorm:"embedded"`
	FirstSupplierID int64 `gorm:"column:first_supplier_id" json:"supplier_id"`
	FirstTaxonID    int64 `gorm:"column:first_taxon_id" json:"taxon_id"`
}
