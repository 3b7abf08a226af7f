package service

import (
	"context"
	"testing"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taggedVariant(id int64, tags string) model.VariantWithOverride {
	vo := model.VariantWithOverride{Variant: model.Variant{ID: id, ProductID: id}}
	if tags != "" {
		vo.Override = &model.VariantOverride{VariantID: id, Tags: tags}
	}
	return vo
}

func visibleIDs(vos []model.VariantWithOverride) []int64 {
	out := make([]int64, len(vos))
	for i, vo := range vos {
		out[i] = vo.Variant.ID
	}
	return out
}

func TestTagRuleFilterNoRulesPassesThrough(t *testing.T) {
	hubs := newStubHubRepo()
	hubs.hubs[1] = &model.Hub{ID: 1}
	f := NewTagRuleFilter(hubs)

	in := []model.VariantWithOverride{taggedVariant(1, "member-only"), taggedVariant(2, "")}
	got, err := f.FilterVisible(context.Background(), hubs.hubs[1], nil, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, visibleIDs(got))
}

func TestTagRuleHiddenForMatchingCustomers(t *testing.T) {
	hubs := newStubHubRepo()
	hubs.hubs[1] = &model.Hub{ID: 1}
	hubs.rules[1] = []model.TagRule{{
		HubID: 1, VariantTags: "wholesale", CustomerTags: "retail",
		MatchedVisibility: model.TagRuleHidden,
	}}
	f := NewTagRuleFilter(hubs)

	in := []model.VariantWithOverride{taggedVariant(1, "wholesale"), taggedVariant(2, "")}

	// Retail customers lose the wholesale variant.
	retail := &model.Customer{ID: 5, HubID: 1, Tags: "retail"}
	got, err := f.FilterVisible(context.Background(), hubs.hubs[1], retail, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, visibleIDs(got))

	// Everyone else keeps it.
	got, err = f.FilterVisible(context.Background(), hubs.hubs[1], nil, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, visibleIDs(got))
}

func TestTagRuleVisibleOnlyForMatchingCustomers(t *testing.T) {
	hubs := newStubHubRepo()
	hubs.hubs[1] = &model.Hub{ID: 1}
	hubs.rules[1] = []model.TagRule{{
		HubID: 1, VariantTags: "member-only", CustomerTags: "member",
		MatchedVisibility: model.TagRuleVisible,
	}}
	f := NewTagRuleFilter(hubs)

	in := []model.VariantWithOverride{taggedVariant(1, "member-only"), taggedVariant(2, "")}

	member := &model.Customer{ID: 7, HubID: 1, Tags: "member, newsletter"}
	got, err := f.FilterVisible(context.Background(), hubs.hubs[1], member, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, visibleIDs(got))

	stranger := &model.Customer{ID: 8, HubID: 1, Tags: "retail"}
	got, err = f.FilterVisible(context.Background(), hubs.hubs[1], stranger, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, visibleIDs(got))

	// Anonymous browsing counts as non-matching.
	got, err = f.FilterVisible(context.Background(), hubs.hubs[1], nil, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, visibleIDs(got))
}

// Untagged variants are never touched by rules.
func TestTagRulesIgnoreUntaggedVariants(t *testing.T) {
	hubs := newStubHubRepo()
	hubs.hubs[1] = &model.Hub{ID: 1}
	hubs.rules[1] = []model.TagRule{{
		HubID: 1, VariantTags: "special", CustomerTags: "vip",
		MatchedVisibility: model.TagRuleVisible,
	}}
	f := NewTagRuleFilter(hubs)

	in := []model.VariantWithOverride{taggedVariant(1, "")}
	got, err := f.FilterVisible(context.Background(), hubs.hubs[1], nil, in)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, visibleIDs(got))
}
