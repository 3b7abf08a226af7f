// Package availability decides whether a variant is purchasable at a hub,
// combining its raw stock state with the hub's manual override, if any.
//
// The decision is kept as a boolean expression tree. The same tree is
// evaluated in-process (unit semantics, tests) and rendered to SQL for the
// storage layer (set filtering over the whole catalog), so the two paths
// cannot drift apart.
package availability

import "strings"

// VariantState is the raw stock state of a variant.
type VariantState struct {
	OnDemand    bool
	CountOnHand int
}

// OverrideState is a hub-scoped manual override. Both fields are tri-state:
// nil means "not set", so the variant's own value stays authoritative.
type OverrideState struct {
	OnDemand    *bool
	CountOnHand *int
}

// Expr is a node of the availability expression tree.
type Expr interface {
	// Eval evaluates the node against a variant and its override.
	// override is nil when no override row exists for the (hub, variant) pair.
	Eval(v VariantState, override *OverrideState) bool
	// SQL renders the node against the variants / variant_overrides tables.
	// NULL comparisons collapse to false, matching Eval.
	SQL() string
}

type and []Expr

func (e and) Eval(v VariantState, o *OverrideState) bool {
	for _, sub := range e {
		if !sub.Eval(v, o) {
			return false
		}
	}
	return true
}

func (e and) SQL() string { return join(e, " AND ") }

type or []Expr

func (e or) Eval(v VariantState, o *OverrideState) bool {
	for _, sub := range e {
		if sub.Eval(v, o) {
			return true
		}
	}
	return false
}

func (e or) SQL() string { return join(e, " OR ") }

func join(exprs []Expr, op string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.SQL()
	}
	return "( " + strings.Join(parts, op) + " )"
}

// ── Leaves ───────────────────────────────────────────────────────────────────

type leaf struct {
	sql  string
	eval func(v VariantState, o *OverrideState) bool
}

func (l leaf) Eval(v VariantState, o *OverrideState) bool { return l.eval(v, o) }
func (l leaf) SQL() string                                { return l.sql }

var (
	variantNotOverridden = leaf{
		sql:  "variant_overrides.id IS NULL",
		eval: func(_ VariantState, o *OverrideState) bool { return o == nil },
	}
	variantOverridden = leaf{
		sql:  "variant_overrides.id IS NOT NULL",
		eval: func(_ VariantState, o *OverrideState) bool { return o != nil },
	}
	variantInStock = leaf{
		sql:  "variants.count_on_hand > 0",
		eval: func(v VariantState, _ *OverrideState) bool { return v.CountOnHand > 0 },
	}
	variantOnDemand = leaf{
		sql:  "variants.on_demand IS TRUE",
		eval: func(v VariantState, _ *OverrideState) bool { return v.OnDemand },
	}
	variantNotOnDemand = leaf{
		sql:  "variants.on_demand IS FALSE",
		eval: func(v VariantState, _ *OverrideState) bool { return !v.OnDemand },
	}
	overrideOnDemand = leaf{
		sql: "variant_overrides.on_demand IS TRUE",
		eval: func(_ VariantState, o *OverrideState) bool {
			return o != nil && o.OnDemand != nil && *o.OnDemand
		},
	}
	overrideOnDemandNull = leaf{
		sql: "variant_overrides.on_demand IS NULL",
		eval: func(_ VariantState, o *OverrideState) bool {
			return o != nil && o.OnDemand == nil
		},
	}
	overrideInStock = leaf{
		sql: "variant_overrides.count_on_hand > 0",
		eval: func(_ VariantState, o *OverrideState) bool {
			return o != nil && o.CountOnHand != nil && *o.CountOnHand > 0
		},
	}
)

// Stocked is the full availability predicate: the union of four disjunctive
// clauses over (override present, override on-demand tri-state, override
// count, variant on-demand, variant count). No other combination is
// purchasable.
var Stocked Expr = or{
	// No override: the variant's own state decides.
	and{variantNotOverridden, or{variantOnDemand, variantInStock}},
	// Override present and decisive on its own.
	and{variantOverridden, or{overrideOnDemand, overrideInStock}},
	// Override present but on-demand unset and count not positive:
	// fall through to the variant's state.
	and{variantOverridden, and{overrideOnDemandNull, variantOnDemand}},
	and{variantOverridden, and{overrideOnDemandNull, variantNotOnDemand, variantInStock}},
}

// IsAvailable reports whether a variant with the given raw state is
// purchasable at a hub, under the hub's override if one exists.
func IsAvailable(v VariantState, override *OverrideState) bool {
	return Stocked.Eval(v, override)
}
