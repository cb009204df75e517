package port

import "context"

// HSNEntry is a single HSN code row with its GST rate split.
type HSNEntry struct {
	Code        string  `db:"code"`
	Description string  `db:"description"`
	CGSTRate    float64 `db:"cgst_rate"`
	SGSTRate    float64 `db:"sgst_rate"`
	IGSTRate    float64 `db:"igst_rate"`
	CessRate    float64 `db:"cess_rate"`
}

// HSNRepository defines the contract for HSN code data access.
type HSNRepository interface {
	LoadAll(ctx context.Context) ([]HSNEntry, error)
}
