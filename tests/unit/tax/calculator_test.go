package tax_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"billforge/internal/catalog"
	"billforge/internal/domain"
	"billforge/internal/tax"
)

func defaultLookup() *catalog.Lookup {
	return catalog.NewLookup(catalog.Default())
}

func TestComputeItem_Intrastate(t *testing.T) {
	item := tax.ComputeItem(domain.LineItemInput{
		Description: "Casuarina Poles",
		HSNCode:     "4404",
		Quantity:    30,
		UOM:         "Tons",
		Rate:        1400,
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Equal(t, 42000.0, item.TaxableValue)
	assert.Equal(t, 2520.0, item.CGSTAmount)
	assert.Equal(t, 2520.0, item.SGSTAmount)
	assert.Equal(t, 0.0, item.IGSTAmount)
	assert.Equal(t, 0.0, item.CessAmount)
	assert.Equal(t, 47040.0, item.TotalAmount)
}

func TestComputeItem_Interstate(t *testing.T) {
	item := tax.ComputeItem(domain.LineItemInput{
		HSNCode:  "4404",
		Quantity: 30,
		Rate:     1400,
	}, domain.SaleTypeInterstate, defaultLookup())

	assert.Equal(t, 42000.0, item.TaxableValue)
	assert.Equal(t, 0.0, item.CGSTAmount)
	assert.Equal(t, 0.0, item.SGSTAmount)
	assert.Equal(t, 5040.0, item.IGSTAmount)
	assert.Equal(t, 47040.0, item.TotalAmount)
}

func TestComputeItem_UnknownCodeZeroRates(t *testing.T) {
	item := tax.ComputeItem(domain.LineItemInput{
		Description: "Unlisted goods",
		HSNCode:     "9999",
		Quantity:    10,
		Rate:        100,
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Equal(t, 1000.0, item.TaxableValue)
	assert.Equal(t, 0.0, item.CGSTAmount)
	assert.Equal(t, 0.0, item.SGSTAmount)
	assert.Equal(t, 0.0, item.IGSTAmount)
	assert.Equal(t, item.TaxableValue, item.TotalAmount)
}

func TestComputeItem_SanitizesBadNumbers(t *testing.T) {
	item := tax.ComputeItem(domain.LineItemInput{
		HSNCode:  "4404",
		Quantity: -5,
		Rate:     math.NaN(),
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Equal(t, 0.0, item.Quantity)
	assert.Equal(t, 0.0, item.Rate)
	assert.Equal(t, 0.0, item.TaxableValue)
	assert.Equal(t, 0.0, item.TotalAmount)
}

func TestComputeItem_BlankDescriptionInheritsCatalog(t *testing.T) {
	item := tax.ComputeItem(domain.LineItemInput{
		HSNCode:  "4409",
		Quantity: 1,
		Rate:     100,
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Equal(t, "Bamboo flooring", item.Description)
}

func TestComputeItem_NormalizesHSNCode(t *testing.T) {
	item := tax.ComputeItem(domain.LineItemInput{
		HSNCode:  " 4404 ",
		Quantity: 1,
		Rate:     100,
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Equal(t, "4404", item.HSNCode)
	assert.Equal(t, 6.0, item.CGSTRate)
}

func TestComputeItem_CessOverride(t *testing.T) {
	cess := 2.0
	item := tax.ComputeItem(domain.LineItemInput{
		HSNCode:          "4404",
		Quantity:         10,
		Rate:             100,
		CessRateOverride: &cess,
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Equal(t, 2.0, item.CessRate)
	assert.Equal(t, 20.0, item.CessAmount)
	assert.Equal(t, 1000.0+60+60+20, item.TotalAmount)
}

func TestComputeItems_AssignsUniqueIDs(t *testing.T) {
	items := tax.ComputeItems([]domain.LineItemInput{
		{HSNCode: "4404", Quantity: 1, Rate: 100},
		{HSNCode: "4401", Quantity: 2, Rate: 50},
	}, domain.SaleTypeIntrastate, defaultLookup())

	assert.Len(t, items, 2)
	assert.NotEmpty(t, items[0].ID)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}
