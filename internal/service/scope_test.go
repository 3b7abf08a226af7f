package service

import (
	"testing"

	"github.com/TuringTechX/openfoodnetwork/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScopeVariantToHubNoOverride(t *testing.T) {
	v := model.Variant{ID: 1, CountOnHand: 4, Price: decimal.NewFromInt(3)}
	assert.Equal(t, v, ScopeVariantToHub(v, nil))
}

func TestScopeVariantToHubAppliesSetFields(t *testing.T) {
	count := 99
	onDemand := true
	price := decimal.NewFromFloat(1.50)
	v := model.Variant{ID: 1, CountOnHand: 4, OnDemand: false, Price: decimal.NewFromInt(3)}

	scoped := ScopeVariantToHub(v, &model.VariantOverride{
		CountOnHand: &count,
		OnDemand:    &onDemand,
		Price:       &price,
	})
	assert.Equal(t, 99, scoped.CountOnHand)
	assert.True(t, scoped.OnDemand)
	assert.True(t, price.Equal(scoped.Price))

	// Source variant untouched.
	assert.Equal(t, 4, v.CountOnHand)
	assert.False(t, v.OnDemand)
}

func TestScopeVariantToHubLeavesUnsetFields(t *testing.T) {
	count := 0
	v := model.Variant{ID: 1, CountOnHand: 4, OnDemand: true, Price: decimal.NewFromInt(3)}

	scoped := ScopeVariantToHub(v, &model.VariantOverride{CountOnHand: &count})
	assert.Equal(t, 0, scoped.CountOnHand)
	assert.True(t, scoped.OnDemand, "unset on-demand keeps the variant value")
	assert.True(t, v.Price.Equal(scoped.Price))
}
