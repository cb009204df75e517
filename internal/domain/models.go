package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile stores reusable company details and default terms text.
// A profile supplies the company-side defaults of a new invoice.
type Profile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Company   Party     `db:"-" json:"company"`
	Terms     string    `db:"terms" json:"terms"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Party holds the identifying details of the company, receiver, or consignee.
type Party struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"state_code"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Transport holds the goods-movement details printed on the invoice.
type Transport struct {
	Mode            string `json:"mode"`
	VehicleNumber   string `json:"vehicle_number"`
	TransporterName string `json:"transporter_name"`
	ChallanNumber   string `json:"challan_number"`
	LRNumber        string `json:"lr_number"`
	DateOfSupply    string `json:"date_of_supply"`
	PlaceOfSupply   string `json:"place_of_supply"`
	PONumber        string `json:"po_number"`
	EWayBillNumber  string `json:"eway_bill_number"`
}

// LineItemInput is one raw invoice row as submitted by the caller.
// Quantity and rate may be zero for placeholder rows; they are never rejected.
type LineItemInput struct {
	Description      string   `json:"description"`
	HSNCode          string   `json:"hsn_code"`
	Quantity         float64  `json:"quantity"`
	UOM              string   `json:"uom"`
	Rate             float64  `json:"rate"`
	CessRateOverride *float64 `json:"cess_rate,omitempty"`
}

// ComputedLineItem is a fully derived invoice row. It is always recomputed
// from a LineItemInput plus the sale type, never persisted independently.
type ComputedLineItem struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	HSNCode      string  `json:"hsn_code"`
	Quantity     float64 `json:"quantity"`
	UOM          string  `json:"uom"`
	Rate         float64 `json:"rate"`
	TaxableValue float64 `json:"taxable_value"`
	CGSTRate     float64 `json:"cgst_rate"`
	CGSTAmount   float64 `json:"cgst_amount"`
	SGSTRate     float64 `json:"sgst_rate"`
	SGSTAmount   float64 `json:"sgst_amount"`
	IGSTRate     float64 `json:"igst_rate"`
	IGSTAmount   float64 `json:"igst_amount"`
	CessRate     float64 `json:"cess_rate"`
	CessAmount   float64 `json:"cess_amount"`
	TotalAmount  float64 `json:"total_amount"`
}

// InvoiceTotals holds the invoice-level sums derived from the computed items.
type InvoiceTotals struct {
	TotalQuantity     float64 `json:"total_quantity"`
	TotalTaxableValue float64 `json:"total_taxable_value"`
	TotalCGST         float64 `json:"total_cgst"`
	TotalSGST         float64 `json:"total_sgst"`
	TotalIGST         float64 `json:"total_igst"`
	TotalCess         float64 `json:"total_cess"`
	TotalTax          float64 `json:"total_tax"`
	GrandTotal        float64 `json:"grand_total"`
	AmountInWords     string  `json:"amount_in_words"`
}

// InvoiceRecord is the full invoice as assembled at submission time.
// It is read-only after creation and is what the rendering layer consumes.
type InvoiceRecord struct {
	Company   Party     `json:"company"`
	Receiver  Party     `json:"receiver"`
	Consignee Party     `json:"consignee"`

	InvoiceNumber string   `json:"invoice_number"`
	InvoiceDate   string   `json:"invoice_date"`
	InvoiceType   string   `json:"invoice_type"`
	SaleType      SaleType `json:"sale_type"`
	// SaleTypeOverridden marks that the stored sale type diverges from the
	// one derived from the state codes and was kept deliberately.
	SaleTypeOverridden bool   `json:"sale_type_overridden,omitempty"`
	ReverseCharge      bool   `json:"reverse_charge"`

	Transport Transport `json:"transport"`

	Items  []ComputedLineItem `json:"items"`
	Totals InvoiceTotals      `json:"totals"`

	Terms string `json:"terms"`
}

// Invoice is the persisted wrapper around an InvoiceRecord. A handful of
// columns are denormalized for listing and the register export; the full
// record rides along as JSON.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   string          `db:"invoice_date" json:"invoice_date"`
	ReceiverName  string          `db:"receiver_name" json:"receiver_name"`
	SaleType      SaleType        `db:"sale_type" json:"sale_type"`
	GrandTotal    float64         `db:"grand_total" json:"grand_total"`
	Record        json.RawMessage `db:"record" json:"record"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
