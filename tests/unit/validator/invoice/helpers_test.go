package invoice_test

import (
	"context"

	"billforge/internal/catalog"
	"billforge/internal/domain"
	"billforge/internal/tax"
	"billforge/internal/validator/invoice"
)

// validRecord builds a fully-consistent invoice that passes every rule.
// Intrastate: both parties in Andhra Pradesh (37). Interstate: the receiver
// moves to Karnataka (29) with a matching GSTIN.
func validRecord(saleType domain.SaleType) *domain.InvoiceRecord {
	receiver := domain.Party{
		Name: "Vijaya Timber Depot", Address: "Market Road, Vijayawada",
		GSTIN: "37FGHIJ5678K1Z2", State: "Andhra Pradesh", StateCode: "37",
	}
	if saleType == domain.SaleTypeInterstate {
		receiver.GSTIN = "29FGHIJ5678K1Z2"
		receiver.State = "Karnataka"
		receiver.StateCode = "29"
	}

	lookup := catalog.NewLookup(catalog.Default())
	items := tax.ComputeItems([]domain.LineItemInput{
		{Description: "Casuarina Poles", HSNCode: "4404", Quantity: 30, UOM: "Tons", Rate: 1400},
	}, saleType, lookup)

	return &domain.InvoiceRecord{
		Company: domain.Party{
			Name: "Sri Lakshmi Wood Works", Address: "12 Timber Lane, Rajahmundry",
			GSTIN: "37ABCDE1234F1Z5", State: "Andhra Pradesh", StateCode: "37",
		},
		Receiver:      receiver,
		Consignee:     receiver,
		InvoiceNumber: "INV-042",
		InvoiceDate:   "15/01/2026",
		SaleType:      saleType,
		Items:         items,
		Totals:        tax.Aggregate(items),
	}
}

// failuresFor runs all rules and returns the diagnostics for one rule key.
func failuresFor(rec *domain.InvoiceRecord, ruleKey string) []invoice.Diagnostic {
	var out []invoice.Diagnostic
	for _, d := range invoice.Run(context.Background(), rec) {
		if d.RuleKey == ruleKey {
			out = append(out, d)
		}
	}
	return out
}
