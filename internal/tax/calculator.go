package tax

import (
	"math"

	"github.com/google/uuid"

	"billforge/internal/catalog"
	"billforge/internal/domain"
)

// ComputeItem derives a fully computed line item from raw input.
//
// Quantity and rate are coerced to 0 when negative or NaN, so a partially
// filled row computes harmlessly to zeros instead of failing. The taxable
// value is quantity*rate, each tax amount is taxable*rate/100 with no
// intermediate rounding (amounts round only at display time), and the total
// is the taxable value plus all four tax amounts. A blank description
// inherits the catalog description for the code.
func ComputeItem(input domain.LineItemInput, saleType domain.SaleType, lookup *catalog.Lookup) domain.ComputedLineItem {
	quantity := sanitize(input.Quantity)
	rate := sanitize(input.Rate)
	taxableValue := quantity * rate

	code := catalog.Normalize(input.HSNCode)
	entry, _ := lookup.Get(code)

	rates := ResolveRates(entry, saleType, input.CessRateOverride)
	cgstAmount := taxableValue * rates.CGST / 100
	sgstAmount := taxableValue * rates.SGST / 100
	igstAmount := taxableValue * rates.IGST / 100
	cessAmount := taxableValue * rates.Cess / 100

	description := input.Description
	if description == "" {
		description = entry.Description
	}

	return domain.ComputedLineItem{
		ID:           uuid.New().String(),
		Description:  description,
		HSNCode:      code,
		Quantity:     quantity,
		UOM:          input.UOM,
		Rate:         rate,
		TaxableValue: taxableValue,
		CGSTRate:     rates.CGST,
		CGSTAmount:   cgstAmount,
		SGSTRate:     rates.SGST,
		SGSTAmount:   sgstAmount,
		IGSTRate:     rates.IGST,
		IGSTAmount:   igstAmount,
		CessRate:     rates.Cess,
		CessAmount:   cessAmount,
		TotalAmount:  taxableValue + cgstAmount + sgstAmount + igstAmount + cessAmount,
	}
}

// ComputeItems computes every row of an invoice under one sale type.
func ComputeItems(inputs []domain.LineItemInput, saleType domain.SaleType, lookup *catalog.Lookup) []domain.ComputedLineItem {
	items := make([]domain.ComputedLineItem, len(inputs))
	for i, in := range inputs {
		items[i] = ComputeItem(in, saleType, lookup)
	}
	return items
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
