package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"github.com/rs/zerolog/log"
)

// SecondaryKind selects which first-variant attribute a hub's catalog is
// joined and ordered on.
type SecondaryKind int

const (
	SecondarySupplier SecondaryKind = iota
	SecondaryTaxon
)

// Ordering is a resolved hub sort preference: an optional ranked preference
// list over one secondary attribute, always tie-broken by name then id.
type Ordering struct {
	kind  SecondaryKind
	prefs []int64
	rank  map[int64]int
}

// OrderingFor translates a hub's sorting configuration into a concrete
// Ordering. A blank or malformed preference list is recovered locally: the
// hub gets the default name ordering and the problem is logged, never
// surfaced.
func OrderingFor(hub *model.Hub) Ordering {
	switch hub.SortingMethod {
	case model.SortByProducer:
		if ord, ok := preferenceOrdering(SecondarySupplier, hub.ProducerOrder); ok {
			return ord
		}
	case model.SortByCategory:
		if ord, ok := preferenceOrdering(SecondaryTaxon, hub.TaxonOrder); ok {
			return ord
		}
	}
	if invalidPreference(hub) {
		log.Warn().
			Int64("hub_id", hub.ID).
			Str("sorting_method", hub.SortingMethod).
			Msg("invalid sort preference list, falling back to name ordering")
	}
	return Ordering{kind: SecondarySupplier}
}

func preferenceOrdering(kind SecondaryKind, raw string) (Ordering, bool) {
	prefs, ok := parsePreferenceList(raw)
	if !ok {
		return Ordering{}, false
	}
	rank := make(map[int64]int, len(prefs))
	for i, id := range prefs {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}
	return Ordering{kind: kind, prefs: prefs, rank: rank}, true
}

// parsePreferenceList parses a comma-separated id list. Any malformed token
// invalidates the whole list.
func parsePreferenceList(raw string) ([]int64, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// Kind reports which secondary attribute the ordering keys on. The default
// ordering joins on the supplier, matching the default catalog relation.
func (o Ordering) Kind() SecondaryKind { return o.kind }

func (o Ordering) secondaryID(p model.CatalogProduct) int64 {
	if o.kind == SecondaryTaxon {
		return p.FirstTaxonID
	}
	return p.FirstSupplierID
}

// Less is the in-memory comparator equivalent of OrderBySQL: preference-list
// position first (unlisted ids rank last), then name ascending, then id
// ascending. The trailing id key makes the order total, so equal-rank
// products keep a stable relative order regardless of input order.
func (o Ordering) Less(a, b model.CatalogProduct) bool {
	if o.rank != nil {
		ra, rb := o.rankOf(a), o.rankOf(b)
		if ra != rb {
			return ra < rb
		}
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

func (o Ordering) rankOf(p model.CatalogProduct) int {
	if r, ok := o.rank[o.secondaryID(p)]; ok {
		return r
	}
	return len(o.rank)
}

// OrderBySQL renders the ordering for the storage layer. Preference ranking
// uses the boolean-sort idiom (`column=id DESC` per preferred id, in order).
// Only parsed int64 ids and fixed column names are interpolated.
func (o Ordering) OrderBySQL() string {
	if len(o.prefs) == 0 {
		return "products.name ASC, products.id ASC"
	}
	column := "first_variant.supplier_id"
	if o.kind == SecondaryTaxon {
		column = "first_variant.taxon_id"
	}
	var b strings.Builder
	for _, id := range o.prefs {
		fmt.Fprintf(&b, "%s=%d DESC, ", column, id)
	}
	b.WriteString("products.name ASC, products.id ASC")
	return b.String()
}

func invalidPreference(hub *model.Hub) bool {
	switch hub.SortingMethod {
	case model.SortByProducer:
		return strings.TrimSpace(hub.ProducerOrder) != ""
	case model.SortByCategory:
		return strings.TrimSpace(hub.TaxonOrder) != ""
	}
	return false
}
