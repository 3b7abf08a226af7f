package service

import "github.com/TuringTechX/openfoodnetwork/internal/model"

// FirstVariantOf picks the representative variant per product: the one with
// the lowest variant id. This is the single tie-break rule for products whose
// variants disagree on taxon or supplier; the SQL first-variant join in the
// product repository implements the same rule (DISTINCT ON ... ORDER BY
// product_id, id).
func FirstVariantOf(variants []model.Variant) map[int64]model.Variant {
	first := make(map[int64]model.Variant)
	for _, v := range variants {
		if cur, ok := first[v.ProductID]; !ok || v.ID < cur.ID {
			first[v.ProductID] = v
		}
	}
	return first
}

// AttachSecondaryAttribute annotates products with the supplier and taxon of
// their first variant among the given (already availability-filtered)
// variants. Products with no variant in the set are dropped: every catalog
// product must have at least one available variant.
func AttachSecondaryAttribute(products []model.Product, variants []model.Variant) []model.CatalogProduct {
	first := FirstVariantOf(variants)
	rows := make([]model.CatalogProduct, 0, len(products))
	for _, p := range products {
		fv, ok := first[p.ID]
		if !ok {
			continue
		}
		rows = append(rows, model.CatalogProduct{
			Product:         p,
			FirstSupplierID: fv.SupplierID,
			FirstTaxonID:    fv.TaxonID,
		})
	}
	return rows
}
