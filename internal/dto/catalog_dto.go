package dto

import "github.com/shopspring/decimal"

// CatalogQuery carries every filter parameter the catalog endpoint accepts.
// The two property keys (with_variants_supplier_properties, with_properties)
// are the documented filter-parameter contract; their combination semantics
// live in service.Combine.
type CatalogQuery struct {
	CycleID    int64 `form:"cycle_id" validate:"required,gt=0"`
	CustomerID int64 `form:"customer_id"`

	// Generic attribute filter (opaque collaborator; default matches name).
	NameCont string `form:"q_name_cont"`

	// Supplier-property filter: property ids inherited from the product's
	// first-variant supplier.
	SupplierPropertyIDs []int64 `form:"with_variants_supplier_properties"`
	// WithProperties switches the property filter to additive (OR) semantics.
	WithProperties bool `form:"with_properties"`

	Page    int `form:"page" validate:"omitempty,gte=1"`
	PerPage int `form:"per_page" validate:"omitempty,gte=1,lte=100"`
}

// CatalogProductResponse is one product row of a resolved catalog page, with
// the derived first-variant attributes the ordering was computed from.
type CatalogProductResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	SupplierID int64  `json:"supplier_id"`
	TaxonID    int64  `json:"taxon_id"`
}

// CatalogVariantResponse is a variant scoped to the hub: count, on-demand and
// price already reflect the hub's override.
type CatalogVariantResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	SupplierID  int64           `json:"supplier_id"`
	TaxonID     int64           `json:"taxon_id"`
	OnDemand    bool            `json:"on_demand"`
	CountOnHand int             `json:"count_on_hand"`
	Price       decimal.Decimal `json:"price"`
}

// CatalogPageResponse is one resolved, paginated catalog page.
type CatalogPageResponse struct {
	Products          []CatalogProductResponse           `json:"products"`
	VariantsByProduct map[int64][]CatalogVariantResponse `json:"variants_by_product"`
	TotalAvailable    int64                              `json:"total_available"`
	Page              int                                `json:"page"`
	PerPage           int                                `json:"per_page"`
	// PropertyFilterFallback flags that the supplier-property filter matched
	// nothing and the attribute-filtered set was returned unchanged.
	PropertyFilterFallback bool `json:"property_filter_fallback,omitempty"`
}
