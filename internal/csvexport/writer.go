package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"billforge/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the invoice register header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Sale Type",
	"Reverse Charge",
	"Company Name",
	"Company GSTIN",
	"Company State Code",
	"Receiver Name",
	"Receiver GSTIN",
	"Receiver State Code",
	"Place of Supply",
	"Item Count",
	"Total Quantity",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Cess",
	"Total Tax",
	"Grand Total",
	"Created At",
}

// Writer wraps csv.Writer for exporting the invoice register as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts a batch of invoices to CSV rows and writes them.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		row := invoiceToRow(&invoices[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// invoiceToRow converts a single invoice to a register row. The denormalized
// columns always fill; the rest come from the JSON record when it decodes.
func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(columns))

	row[0] = inv.InvoiceNumber
	row[1] = inv.InvoiceDate
	row[2] = string(inv.SaleType)
	row[7] = inv.ReceiverName
	row[19] = formatMoney(inv.GrandTotal)
	row[20] = inv.CreatedAt.Format(time.RFC3339)

	if len(inv.Record) == 0 {
		return row
	}
	var rec domain.InvoiceRecord
	if err := json.Unmarshal(inv.Record, &rec); err != nil {
		return row
	}

	row[3] = formatBool(rec.ReverseCharge)
	row[4] = rec.Company.Name
	row[5] = rec.Company.GSTIN
	row[6] = rec.Company.StateCode
	row[8] = rec.Receiver.GSTIN
	row[9] = rec.Receiver.StateCode
	row[10] = rec.Transport.PlaceOfSupply
	row[11] = strconv.Itoa(len(rec.Items))
	row[12] = formatMoney(rec.Totals.TotalQuantity)
	row[13] = formatMoney(rec.Totals.TotalTaxableValue)
	row[14] = formatMoney(rec.Totals.TotalCGST)
	row[15] = formatMoney(rec.Totals.TotalSGST)
	row[16] = formatMoney(rec.Totals.TotalIGST)
	row[17] = formatMoney(rec.Totals.TotalCess)
	row[18] = formatMoney(rec.Totals.TotalTax)

	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
