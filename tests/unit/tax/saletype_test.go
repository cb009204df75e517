package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billforge/internal/domain"
	"billforge/internal/tax"
)

func TestClassify_SameState(t *testing.T) {
	assert.Equal(t, domain.SaleTypeIntrastate, tax.Classify("37", "37"))
}

func TestClassify_DifferentStates(t *testing.T) {
	assert.Equal(t, domain.SaleTypeInterstate, tax.Classify("37", "29"))
}

func TestClassify_MissingCodeDefaultsInterstate(t *testing.T) {
	assert.Equal(t, domain.SaleTypeInterstate, tax.Classify("", "29"))
	assert.Equal(t, domain.SaleTypeInterstate, tax.Classify("37", ""))
	assert.Equal(t, domain.SaleTypeInterstate, tax.Classify("", ""))
}

func TestReconcile_EmptyDerives(t *testing.T) {
	saleType, overridden := tax.Reconcile("", false, "37", "37")
	assert.Equal(t, domain.SaleTypeIntrastate, saleType)
	assert.False(t, overridden)
}

func TestReconcile_AgreementClearsOverride(t *testing.T) {
	saleType, overridden := tax.Reconcile(domain.SaleTypeIntrastate, true, "37", "37")
	assert.Equal(t, domain.SaleTypeIntrastate, saleType)
	assert.False(t, overridden)
}

func TestReconcile_ConflictKeepsManualValue(t *testing.T) {
	saleType, overridden := tax.Reconcile(domain.SaleTypeInterstate, false, "37", "37")
	assert.Equal(t, domain.SaleTypeInterstate, saleType)
	assert.True(t, overridden)
}
