package availability

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

// expected mirrors the availability decision table: the four disjunctive
// clauses written out independently of the tree under test.
func expected(v VariantState, o *OverrideState) bool {
	variantStocked := v.OnDemand || v.CountOnHand > 0
	if o == nil {
		return variantStocked
	}
	if o.OnDemand != nil && *o.OnDemand {
		return true
	}
	if o.CountOnHand != nil && *o.CountOnHand > 0 {
		return true
	}
	if o.OnDemand == nil {
		return variantStocked
	}
	// Override explicitly not on-demand and not in stock.
	return false
}

// TestIsAvailableDecisionTable sweeps every relevant combination:
// override absent vs present with on-demand true/false/unset, override count
// sign, variant on-demand, variant count sign.
func TestIsAvailableDecisionTable(t *testing.T) {
	overrideOnDemand := []*bool{nil, boolPtr(true), boolPtr(false)}
	overrideCounts := []*int{nil, intPtr(0), intPtr(7)}
	variantCounts := []int{0, 5}

	for _, vOnDemand := range []bool{true, false} {
		for _, vCount := range variantCounts {
			v := VariantState{OnDemand: vOnDemand, CountOnHand: vCount}

			// Override absent.
			name := fmt.Sprintf("no_override/on_demand=%v/count=%d", vOnDemand, vCount)
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, expected(v, nil), IsAvailable(v, nil))
			})

			// Override present, all tri-state x count combinations.
			for _, oOnDemand := range overrideOnDemand {
				for _, oCount := range overrideCounts {
					o := &OverrideState{OnDemand: oOnDemand, CountOnHand: oCount}
					name := fmt.Sprintf("override/od=%v/count=%v/variant_od=%v/variant_count=%d",
						fmtBoolPtr(oOnDemand), fmtIntPtr(oCount), vOnDemand, vCount)
					t.Run(name, func(t *testing.T) {
						assert.Equal(t, expected(v, o), IsAvailable(v, o))
					})
				}
			}
		}
	}
}

func fmtBoolPtr(b *bool) string {
	if b == nil {
		return "unset"
	}
	return fmt.Sprintf("%v", *b)
}

func fmtIntPtr(n *int) string {
	if n == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *n)
}

func TestIsAvailableKnownRows(t *testing.T) {
	cases := []struct {
		name     string
		variant  VariantState
		override *OverrideState
		want     bool
	}{
		{"no override, variant on demand", VariantState{OnDemand: true}, nil, true},
		{"no override, variant in stock", VariantState{CountOnHand: 3}, nil, true},
		{"no override, out of stock", VariantState{}, nil, false},
		{"override on demand wins", VariantState{}, &OverrideState{OnDemand: boolPtr(true)}, true},
		{"override stock wins", VariantState{}, &OverrideState{CountOnHand: intPtr(4)}, true},
		{"override unset falls to variant on demand", VariantState{OnDemand: true},
			&OverrideState{CountOnHand: intPtr(0)}, true},
		{"override unset falls to variant stock", VariantState{CountOnHand: 2},
			&OverrideState{CountOnHand: intPtr(0)}, true},
		{"override explicitly off hides stocked variant", VariantState{CountOnHand: 9},
			&OverrideState{OnDemand: boolPtr(false), CountOnHand: intPtr(0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAvailable(tc.variant, tc.override))
		})
	}
}

// Variant raw count 0, not on demand; override present with on-demand unset
// and count 0: nothing grants availability.
func TestOverrideUnsetAndZeroEverywhereIsUnavailable(t *testing.T) {
	v := VariantState{OnDemand: false, CountOnHand: 0}
	o := &OverrideState{OnDemand: nil, CountOnHand: intPtr(0)}
	assert.False(t, IsAvailable(v, o))
}

// Variant holds stock but the override zeroes its count without setting
// on-demand: the override count alone is not decisive, so the variant's own
// stock keeps it purchasable.
func TestOverrideZeroCountDoesNotHideStockedVariant(t *testing.T) {
	v := VariantState{OnDemand: false, CountOnHand: 5}
	o := &OverrideState{OnDemand: nil, CountOnHand: intPtr(0)}
	assert.True(t, IsAvailable(v, o))
}

// Absent override: unrelated override data must never leak into the result.
func TestAbsentOverrideIsInert(t *testing.T) {
	for _, v := range []VariantState{
		{OnDemand: true, CountOnHand: -1},
		{OnDemand: false, CountOnHand: 10},
		{OnDemand: false, CountOnHand: 0},
	} {
		got := IsAvailable(v, nil)
		assert.Equal(t, v.OnDemand || v.CountOnHand > 0, got)
	}
}

func TestStockedSQLRendersAllClauses(t *testing.T) {
	sql := Stocked.SQL()

	require.NotEmpty(t, sql)
	for _, fragment := range []string{
		"variant_overrides.id IS NULL",
		"variant_overrides.id IS NOT NULL",
		"variants.on_demand IS TRUE",
		"variants.on_demand IS FALSE",
		"variants.count_on_hand > 0",
		"variant_overrides.on_demand IS TRUE",
		"variant_overrides.on_demand IS NULL",
		"variant_overrides.count_on_hand > 0",
	} {
		assert.Contains(t, sql, fragment)
	}
}
