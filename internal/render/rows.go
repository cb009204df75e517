package render

import (
	"fmt"
	"strconv"
	"strings"

	"billforge/internal/domain"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rupees(v float64) string {
	return "₹" + money(v)
}

// taxHeaders returns the tax column headers for the dynamic mode. The
// column set follows the sale type: IGST for interstate, CGST+SGST for
// intrastate, with a cess column under either regime.
func taxHeaders(saleType domain.SaleType) string {
	if saleType == domain.SaleTypeInterstate {
		return `<th class="text-right" style="width: 12%;">IGST</th><th class="text-right" style="width: 8%;">Cess</th>`
	}
	return `<th class="text-right" style="width: 10%;">CGST</th><th class="text-right" style="width: 10%;">SGST</th><th class="text-right" style="width: 8%;">Cess</th>`
}

// dynamicRows emits one row per item with the sale-type-driven tax cells.
func dynamicRows(items []domain.ComputedLineItem, saleType domain.SaleType) string {
	var b strings.Builder
	for i := range items {
		it := &items[i]
		var taxCells string
		if saleType == domain.SaleTypeInterstate {
			taxCells = fmt.Sprintf(`<td class="text-right">%s</td><td class="text-right">%s</td>`,
				rupees(it.IGSTAmount), rupees(it.CessAmount))
		} else {
			taxCells = fmt.Sprintf(`<td class="text-right">%s</td><td class="text-right">%s</td><td class="text-right">%s</td>`,
				rupees(it.CGSTAmount), rupees(it.SGSTAmount), rupees(it.CessAmount))
		}
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td class="text-right">%s</td><td class="text-right">%s %s</td><td class="text-right">%s</td><td class="text-right">%s</td>%s<td class="text-right"><strong>%s</strong></td></tr>`,
			i+1, it.Description, it.HSNCode, money(it.Quantity), it.UOM,
			rupees(it.Rate), rupees(it.TaxableValue), taxCells, rupees(it.TotalAmount))
		b.WriteString("\n")
	}
	return b.String()
}

// taxTotals emits the footer cells matching taxHeaders.
func taxTotals(totals domain.InvoiceTotals, saleType domain.SaleType) string {
	if saleType == domain.SaleTypeInterstate {
		return fmt.Sprintf(`<td class="text-right">%s</td><td class="text-right">%s</td>`,
			rupees(totals.TotalIGST), rupees(totals.TotalCess))
	}
	return fmt.Sprintf(`<td class="text-right">%s</td><td class="text-right">%s</td><td class="text-right">%s</td>`,
		rupees(totals.TotalCGST), rupees(totals.TotalSGST), rupees(totals.TotalCess))
}

// detailedHeaders shows every tax column pair uniformly; inapplicable
// columns simply carry zeros.
func detailedHeaders() string {
	return `<th>CGST %</th><th>CGST Amt</th><th>SGST %</th><th>SGST Amt</th><th>IGST %</th><th>IGST Amt</th><th>Cess %</th><th>Cess Amt</th>`
}

func detailedRows(items []domain.ComputedLineItem) string {
	var b strings.Builder
	for i := range items {
		it := &items[i]
		fmt.Fprintf(&b, `<tr><td class="text-center">%d</td><td>%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-right">%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-right"><strong>%s</strong></td></tr>`,
			i+1, it.Description, it.HSNCode, money(it.Quantity), it.UOM,
			money(it.Rate), money(it.TaxableValue),
			money(it.CGSTRate), money(it.CGSTAmount),
			money(it.SGSTRate), money(it.SGSTAmount),
			money(it.IGSTRate), money(it.IGSTAmount),
			money(it.CessRate), money(it.CessAmount),
			money(it.TotalAmount))
		b.WriteString("\n")
	}
	return b.String()
}

func detailedTotals(totals domain.InvoiceTotals) string {
	return fmt.Sprintf(`<td></td><td class="text-right">%s</td><td></td><td class="text-right">%s</td><td></td><td class="text-right">%s</td><td></td><td class="text-right">%s</td>`,
		money(totals.TotalCGST), money(totals.TotalSGST), money(totals.TotalIGST), money(totals.TotalCess))
}

// compositionRows carries no tax columns at all: composition dealers do
// not collect tax on supplies, so each row ends at the taxable value.
func compositionRows(items []domain.ComputedLineItem) string {
	var b strings.Builder
	for i := range items {
		it := &items[i]
		fmt.Fprintf(&b, `<tr><td>%d</td><td>%s</td><td class="text-right">%s</td><td class="text-right">%s %s</td><td class="text-right">%s</td><td class="text-right"><strong>%s</strong></td></tr>`,
			i+1, it.Description, it.HSNCode, money(it.Quantity), it.UOM,
			rupees(it.Rate), rupees(it.TaxableValue))
		b.WriteString("\n")
	}
	return b.String()
}

// interstateRows is the dedicated IGST-only markup shape used by the
// interstate template, with the IGST rate shown beside the amount.
func interstateRows(items []domain.ComputedLineItem) string {
	var b strings.Builder
	for i := range items {
		it := &items[i]
		fmt.Fprintf(&b, `<tr><td class="text-center">%d</td><td>%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-center">%s</td><td class="text-right">%s</td><td class="text-right">%s</td><td class="text-center">%s%%</td><td class="text-right">%s</td><td class="text-right"><strong>%s</strong></td></tr>`,
			i+1, it.Description, it.HSNCode, money(it.Quantity), it.UOM,
			money(it.Rate), money(it.TaxableValue),
			money(it.IGSTRate), money(it.IGSTAmount), money(it.TotalAmount))
		b.WriteString("\n")
	}
	return b.String()
}
