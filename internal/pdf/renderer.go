package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"billforge/internal/domain"
)

// Renderer produces a tabular A4 PDF rendition of an invoice. The core fonts
// only cover cp1252, so amounts are printed with an "Rs." prefix instead of
// the rupee sign.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Render draws one page per print label and returns the PDF bytes.
func (r *Renderer) Render(rec *domain.InvoiceRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for _, page := range domain.PageLabels {
		r.renderPage(pdf, rec, page)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderPage(pdf *gofpdf.Fpdf, rec *domain.InvoiceRecord, page domain.PageLabel) {
	pdf.AddPage()

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 4, string(page), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 14)
	title := "TAX INVOICE"
	if rec.InvoiceType != "" {
		title = rec.InvoiceType
	}
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, rec.Company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, rec.Company.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("GSTIN: %s    State: %s (%s)", rec.Company.GSTIN, rec.Company.State, rec.Company.StateCode), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 5, "Invoice No: "+rec.InvoiceNumber, "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Invoice Date: "+rec.InvoiceDate, "1", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Sale Type: "+string(rec.SaleType), "1", 0, "L", false, 0, "")
	reverse := "No"
	if rec.ReverseCharge {
		reverse = "Yes"
	}
	pdf.CellFormat(95, 5, "Reverse Charge: "+reverse, "1", 1, "L", false, 0, "")
	if rec.Transport.Mode != "" || rec.Transport.VehicleNumber != "" {
		pdf.CellFormat(95, 5, "Transport: "+rec.Transport.Mode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, "Vehicle: "+rec.Transport.VehicleNumber, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	r.partyBlock(pdf, "Billed To", rec.Receiver, 0)
	r.partyBlock(pdf, "Shipped To", rec.Consignee, 95)
	pdf.Ln(24)

	r.itemsTable(pdf, rec)

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 9)
	pdf.MultiCell(0, 5, "Amount in Words: "+rec.Totals.AmountInWords, "1", "L", false)

	if rec.Terms != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 8)
		pdf.MultiCell(120, 4, "Terms & Conditions:\n"+rec.Terms, "", "L", false)
	}

	pdf.SetFont("Arial", "", 9)
	pdf.SetXY(130, pdf.GetY()+10)
	pdf.CellFormat(65, 5, "For "+rec.Company.Name, "", 1, "C", false, 0, "")
	pdf.SetX(130)
	pdf.CellFormat(65, 14, "", "", 1, "C", false, 0, "")
	pdf.SetX(130)
	pdf.CellFormat(65, 5, "Authorised Signatory", "", 1, "C", false, 0, "")
}

// partyBlock draws a fixed-height party box at xOffset from the left margin.
func (r *Renderer) partyBlock(pdf *gofpdf.Fpdf, label string, party domain.Party, xOffset float64) {
	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY()
	x := left + xOffset

	pdf.SetXY(x, y)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 5, label, "1", 2, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.SetX(x)
	pdf.CellFormat(95, 5, party.Name, "LR", 2, "L", false, 0, "")
	pdf.SetX(x)
	pdf.CellFormat(95, 5, party.Address, "LR", 2, "L", false, 0, "")
	pdf.SetX(x)
	pdf.CellFormat(95, 5, "GSTIN: "+party.GSTIN, "LR", 2, "L", false, 0, "")
	pdf.SetX(x)
	pdf.CellFormat(95, 5, fmt.Sprintf("State: %s (%s)", party.State, party.StateCode), "LRB", 2, "L", false, 0, "")

	pdf.SetY(y)
}

func (r *Renderer) itemsTable(pdf *gofpdf.Fpdf, rec *domain.InvoiceRecord) {
	interstate := rec.SaleType == domain.SaleTypeInterstate

	type col struct {
		title string
		width float64
	}
	cols := []col{
		{"Sr", 8}, {"Description", 44}, {"HSN", 14},
		{"Qty", 18}, {"Rate", 18}, {"Taxable", 22},
	}
	if interstate {
		cols = append(cols, col{"IGST", 22}, col{"Cess", 18})
	} else {
		cols = append(cols, col{"CGST", 18}, col{"SGST", 18}, col{"Cess", 14})
	}
	// Total column absorbs the remaining width of the 190mm content area.
	var used float64
	for _, c := range cols {
		used += c.width
	}
	totalWidth := 190 - used

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for _, c := range cols {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(totalWidth, 6, "Total", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for i := range rec.Items {
		it := &rec.Items[i]
		pdf.CellFormat(8, 5, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(44, 5, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(14, 5, it.HSNCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 5, fmt.Sprintf("%s %s", money(it.Quantity), it.UOM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 5, money(it.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 5, money(it.TaxableValue), "1", 0, "R", false, 0, "")
		if interstate {
			pdf.CellFormat(22, 5, money(it.IGSTAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(18, 5, money(it.CessAmount), "1", 0, "R", false, 0, "")
		} else {
			pdf.CellFormat(18, 5, money(it.CGSTAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(18, 5, money(it.SGSTAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(14, 5, money(it.CessAmount), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(totalWidth, 5, money(it.TotalAmount), "1", 1, "R", false, 0, "")
	}

	t := rec.Totals
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(66, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 6, money(t.TotalQuantity), "1", 0, "R", false, 0, "")
	pdf.CellFormat(18, 6, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(22, 6, money(t.TotalTaxableValue), "1", 0, "R", false, 0, "")
	if interstate {
		pdf.CellFormat(22, 6, money(t.TotalIGST), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, money(t.TotalCess), "1", 0, "R", false, 0, "")
	} else {
		pdf.CellFormat(18, 6, money(t.TotalCGST), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, money(t.TotalSGST), "1", 0, "R", false, 0, "")
		pdf.CellFormat(14, 6, money(t.TotalCess), "1", 0, "R", false, 0, "")
	}
	pdf.CellFormat(totalWidth, 6, "Rs. "+money(t.GrandTotal), "1", 1, "R", false, 0, "")
}
