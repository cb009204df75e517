package render

import (
	"strings"

	"billforge/internal/domain"
	"billforge/internal/tax"
)

// reverseChargeText prints the boolean flag the way the paper form reads.
func reverseChargeText(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Render substitutes a computed invoice into the template source for one
// page label. The substitution map is built once and applied in a single
// pass; every recognized token is always present in the map, so missing
// optional fields come out as empty strings rather than leftover tokens.
func Render(tpl Template, source string, rec *domain.InvoiceRecord, page domain.PageLabel) string {
	subs := substitutions(tpl, rec, page)
	pairs := make([]string, 0, len(subs)*2)
	for token, value := range subs {
		pairs = append(pairs, "{{"+token+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(source)
}

// RenderPages renders the document once per required print instance.
func RenderPages(tpl Template, source string, rec *domain.InvoiceRecord) map[domain.PageLabel]string {
	out := make(map[domain.PageLabel]string, len(domain.PageLabels))
	for _, page := range domain.PageLabels {
		out[page] = Render(tpl, source, rec, page)
	}
	return out
}

func substitutions(tpl Template, rec *domain.InvoiceRecord, page domain.PageLabel) map[string]string {
	totals := rec.Totals
	grandTotal := totals.GrandTotal
	amountInWords := totals.AmountInWords

	var itemsRows, headers, totalCells string
	switch tpl.Mode {
	case domain.ModeDetailed:
		headers = detailedHeaders()
		itemsRows = detailedRows(rec.Items)
		totalCells = detailedTotals(totals)
	case domain.ModeComposition:
		// Bill of Supply: no tax is collected, so the document total is
		// the taxable value and the words follow it.
		itemsRows = compositionRows(rec.Items)
		grandTotal = totals.TotalTaxableValue
		amountInWords = tax.AmountInWords(grandTotal, tax.CurrencyINR)
	case domain.ModeInterstate:
		// The interstate template carries its own fixed IGST column
		// markup, so only the rows are generated.
		itemsRows = interstateRows(rec.Items)
	default: // dynamic
		headers = taxHeaders(rec.SaleType)
		itemsRows = dynamicRows(rec.Items, rec.SaleType)
		totalCells = taxTotals(totals, rec.SaleType)
	}

	return map[string]string{
		"PAGE_TYPE": string(page),

		"COMPANY_NAME":       rec.Company.Name,
		"COMPANY_ADDRESS":    rec.Company.Address,
		"COMPANY_STATE":      rec.Company.State,
		"COMPANY_STATE_CODE": rec.Company.StateCode,
		"COMPANY_GSTIN":      rec.Company.GSTIN,
		"COMPANY_EMAIL":      rec.Company.Email,
		"COMPANY_PHONE":      rec.Company.Phone,
		"COMPANY_CONTACT":    contactLine(tpl.Contact, rec.Company),

		"INVOICE_NUMBER": rec.InvoiceNumber,
		"INVOICE_DATE":   rec.InvoiceDate,
		"INVOICE_TYPE":   rec.InvoiceType,
		"SALE_TYPE":      string(rec.SaleType),
		"REVERSE_CHARGE": reverseChargeText(rec.ReverseCharge),

		"TRANSPORT_MODE":   rec.Transport.Mode,
		"VEHICLE_NUMBER":   rec.Transport.VehicleNumber,
		"TRANSPORTER_NAME": rec.Transport.TransporterName,
		"CHALLAN_NUMBER":   rec.Transport.ChallanNumber,
		"LR_NUMBER":        rec.Transport.LRNumber,
		"DATE_OF_SUPPLY":   rec.Transport.DateOfSupply,
		"PLACE_OF_SUPPLY":  rec.Transport.PlaceOfSupply,
		"PO_NUMBER":        rec.Transport.PONumber,
		"EWAY_BILL_NUMBER": rec.Transport.EWayBillNumber,

		"RECEIVER_NAME":        rec.Receiver.Name,
		"RECEIVER_ADDRESS":     rec.Receiver.Address,
		"RECEIVER_GSTIN":       rec.Receiver.GSTIN,
		"RECEIVER_STATE":       rec.Receiver.State,
		"RECEIVER_STATE_CODE":  rec.Receiver.StateCode,
		"CONSIGNEE_NAME":       rec.Consignee.Name,
		"CONSIGNEE_ADDRESS":    rec.Consignee.Address,
		"CONSIGNEE_GSTIN":      rec.Consignee.GSTIN,
		"CONSIGNEE_STATE":      rec.Consignee.State,
		"CONSIGNEE_STATE_CODE": rec.Consignee.StateCode,

		"TAX_HEADERS": headers,
		"ITEMS_ROWS":  itemsRows,
		"TAX_TOTALS":  totalCells,

		"TOTAL_QUANTITY":      money(totals.TotalQuantity),
		"TOTAL_TAXABLE_VALUE": money(totals.TotalTaxableValue),
		"TOTAL_CGST":          money(totals.TotalCGST),
		"TOTAL_SGST":          money(totals.TotalSGST),
		"TOTAL_IGST":          money(totals.TotalIGST),
		"TOTAL_CESS":          money(totals.TotalCess),
		"TOTAL_TAX":           money(totals.TotalTax),
		"GRAND_TOTAL":         money(grandTotal),
		"AMOUNT_IN_WORDS":     amountInWords,

		"TERMS_AND_CONDITIONS": rec.Terms,
	}
}
