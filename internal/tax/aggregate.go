package tax

import "billforge/internal/domain"

// Aggregate sums computed line items into invoice-level totals and renders
// the grand total in words. An empty slice yields all zeros.
func Aggregate(items []domain.ComputedLineItem) domain.InvoiceTotals {
	var t domain.InvoiceTotals
	for i := range items {
		it := &items[i]
		t.TotalQuantity += it.Quantity
		t.TotalTaxableValue += it.TaxableValue
		t.TotalCGST += it.CGSTAmount
		t.TotalSGST += it.SGSTAmount
		t.TotalIGST += it.IGSTAmount
		t.TotalCess += it.CessAmount
	}
	t.TotalTax = t.TotalCGST + t.TotalSGST + t.TotalIGST + t.TotalCess
	t.GrandTotal = t.TotalTaxableValue + t.TotalTax
	t.AmountInWords = AmountInWords(t.GrandTotal, CurrencyINR)
	return t
}
