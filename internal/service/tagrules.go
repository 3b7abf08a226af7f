package service

import (
	"context"
	"strings"

	"github.com/TuringTechX/openfoodnetwork/internal/model"
	"github.com/TuringTechX/openfoodnetwork/internal/repository"
)

// VisibilityFilter narrows the candidate variant set per hub and customer.
// The catalog pipeline treats it as an opaque collaborator.
type VisibilityFilter interface {
	FilterVisible(ctx context.Context, hub *model.Hub, customer *model.Customer,
		variants []model.VariantWithOverride) ([]model.VariantWithOverride, error)
}

type tagRuleFilter struct {
	hubs repository.HubRepository
}

// NewTagRuleFilter returns the default visibility filter, driven by the hub's
// tag rules over variant-override tags. A hub without rules passes every
// variant through.
func NewTagRuleFilter(hubs repository.HubRepository) VisibilityFilter {
	return &tagRuleFilter{hubs: hubs}
}

func (f *tagRuleFilter) FilterVisible(ctx context.Context, hub *model.Hub, customer *model.Customer,
	variants []model.VariantWithOverride) ([]model.VariantWithOverride, error) {

	rules, err := f.hubs.TagRulesForHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return variants, nil
	}

	customerTags := parseTags(customerTagList(customer))

	visible := make([]model.VariantWithOverride, 0, len(variants))
	for _, vo := range variants {
		if variantVisible(vo, rules, customerTags) {
			visible = append(visible, vo)
		}
	}
	return visible, nil
}

// variantVisible applies the hub's rules in order; the last rule matching the
// variant's override tags decides.
func variantVisible(vo model.VariantWithOverride, rules []model.TagRule, customerTags map[string]struct{}) bool {
	overrideTags := map[string]struct{}{}
	if vo.Override != nil {
		overrideTags = parseTags(vo.Override.Tags)
	}

	visible := true
	for _, rule := range rules {
		if !tagsIntersect(overrideTags, parseTags(rule.VariantTags)) {
			continue
		}
		customerMatches := tagsIntersect(customerTags, parseTags(rule.CustomerTags))
		switch rule.MatchedVisibility {
		case model.TagRuleVisible:
			visible = customerMatches
		case model.TagRuleHidden:
			if customerMatches {
				visible = false
			}
		}
	}
	return visible
}

func customerTagList(c *model.Customer) string {
	if c == nil {
		return ""
	}
	return c.Tags
}

func parseTags(raw string) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(strings.ToLower(t))
		if t != "" {
			tags[t] = struct{}{}
		}
	}
	return tags
}

func tagsIntersect(a, b map[string]struct{}) bool {
	for t := range b {
		if _, ok := a[t]; ok {
			return true
		}
	}
	return false
}
