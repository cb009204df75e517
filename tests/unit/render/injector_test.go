package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billforge/internal/catalog"
	"billforge/internal/domain"
	"billforge/internal/render"
	"billforge/internal/tax"
)

func sampleRecord(saleType domain.SaleType) *domain.InvoiceRecord {
	receiverCode := "37"
	if saleType == domain.SaleTypeInterstate {
		receiverCode = "29"
	}
	receiver := domain.Party{
		Name: "Vijaya Timber Depot", Address: "Market Road, Vijayawada",
		GSTIN: "37FGHIJ5678K1Z2", State: "Andhra Pradesh", StateCode: receiverCode,
	}

	lookup := catalog.NewLookup(catalog.Default())
	items := tax.ComputeItems([]domain.LineItemInput{
		{Description: "Casuarina Poles", HSNCode: "4404", Quantity: 30, UOM: "Tons", Rate: 1400},
	}, saleType, lookup)

	return &domain.InvoiceRecord{
		Company: domain.Party{
			Name: "Sri Lakshmi Wood Works", Address: "12 Timber Lane, Rajahmundry",
			GSTIN: "37ABCDE1234F1Z5", State: "Andhra Pradesh", StateCode: "37",
			Email: "sales@slww.in", Phone: "9876543210",
		},
		Receiver:      receiver,
		Consignee:     receiver,
		InvoiceNumber: "INV-042",
		InvoiceDate:   "15/08/2026",
		SaleType:      saleType,
		Transport:     domain.Transport{Mode: "Road", VehicleNumber: "AP16TV1234"},
		Items:         items,
		Totals:        tax.Aggregate(items),
		Terms:         "Goods once sold will not be taken back.",
	}
}

func resolve(t *testing.T, id domain.TemplateID) render.Template {
	t.Helper()
	tpl, err := render.NewRegistry().Resolve(id)
	require.NoError(t, err)
	return tpl
}

const allTokensSource = `{{PAGE_TYPE}} {{COMPANY_NAME}} {{COMPANY_CONTACT}} {{INVOICE_NUMBER}} ` +
	`{{INVOICE_DATE}} {{SALE_TYPE}} {{REVERSE_CHARGE}} {{RECEIVER_NAME}} {{CONSIGNEE_GSTIN}} ` +
	`{{TRANSPORT_MODE}} {{VEHICLE_NUMBER}} {{TAX_HEADERS}} {{ITEMS_ROWS}} {{TAX_TOTALS}} ` +
	`{{TOTAL_TAXABLE_VALUE}} {{TOTAL_TAX}} {{GRAND_TOTAL}} {{AMOUNT_IN_WORDS}} {{TERMS_AND_CONDITIONS}}`

func TestRender_NoLeftoverTokens(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeIntrastate)
	out := render.Render(resolve(t, domain.TemplateStandard), allTokensSource, rec, domain.PageOriginal)

	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "}}")
	assert.Contains(t, out, "ORIGINAL")
	assert.Contains(t, out, "INV-042")
	assert.Contains(t, out, "Sri Lakshmi Wood Works")
}

func TestRender_DynamicIntrastateColumns(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeIntrastate)
	out := render.Render(resolve(t, domain.TemplateStandard), allTokensSource, rec, domain.PageOriginal)

	assert.Contains(t, out, "CGST")
	assert.Contains(t, out, "SGST")
	assert.NotContains(t, out, "IGST")
	assert.Contains(t, out, "₹2520.00")
	assert.Contains(t, out, "47040.00")
}

func TestRender_DynamicInterstateColumns(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeInterstate)
	out := render.Render(resolve(t, domain.TemplateStandard), allTokensSource, rec, domain.PageOriginal)

	assert.Contains(t, out, "IGST")
	assert.NotContains(t, out, "CGST")
	assert.Contains(t, out, "₹5040.00")
}

func TestRender_DetailedShowsAllPairs(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeIntrastate)
	out := render.Render(resolve(t, domain.TemplateProfessional), allTokensSource, rec, domain.PageOriginal)

	assert.Contains(t, out, "CGST %")
	assert.Contains(t, out, "IGST %")
	assert.Contains(t, out, "Cess %")
}

func TestRender_CompositionOverridesTotals(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeIntrastate)
	out := render.Render(resolve(t, domain.TemplateComposition), allTokensSource, rec, domain.PageOriginal)

	// Bill of Supply totals follow the taxable value, not the taxed total.
	assert.Contains(t, out, "42000.00")
	assert.NotContains(t, out, "47040.00")
	assert.Contains(t, out, "Forty Two Thousand Rupees Only")
	assert.NotContains(t, out, "CGST")
}

func TestRender_InterstateModeEmitsOnlyRows(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeInterstate)
	out := render.Render(resolve(t, domain.TemplateInterstate), "{{TAX_HEADERS}}|{{ITEMS_ROWS}}|{{TAX_TOTALS}}", rec, domain.PageOriginal)

	parts := strings.Split(out, "|")
	require.Len(t, parts, 3)
	assert.Empty(t, parts[0])
	assert.Contains(t, parts[1], "12.00%")
	assert.Contains(t, parts[1], "5040.00")
	assert.Empty(t, parts[2])
}

func TestRender_MissingOptionalFieldsRenderEmpty(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeIntrastate)
	rec.Transport = domain.Transport{}
	rec.Terms = ""

	out := render.Render(resolve(t, domain.TemplateStandard), "[{{TRANSPORT_MODE}}][{{EWAY_BILL_NUMBER}}][{{TERMS_AND_CONDITIONS}}]", rec, domain.PageOriginal)
	assert.Equal(t, "[][][]", out)
}

func TestRenderPages_BothInstances(t *testing.T) {
	rec := sampleRecord(domain.SaleTypeIntrastate)
	pages := render.RenderPages(resolve(t, domain.TemplateStandard), "{{PAGE_TYPE}}", rec)

	require.Len(t, pages, 2)
	assert.Equal(t, "ORIGINAL", pages[domain.PageOriginal])
	assert.Equal(t, "DUPLICATE", pages[domain.PageDuplicate])
}
