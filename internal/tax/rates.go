package tax

import (
	"billforge/internal/catalog"
	"billforge/internal/domain"
)

// RateSet holds the four applicable tax rates for one line item.
// CGST+SGST and IGST are mutually exclusive; cess applies under either regime.
type RateSet struct {
	CGST float64
	SGST float64
	IGST float64
	Cess float64
}

// ResolveRates derives the applicable rates from a catalog entry, the sale
// type, and an optional manual cess override.
//
// Intrastate takes CGST/SGST from the entry and zeroes IGST; if the entry
// only carries an IGST rate it is split evenly. Interstate takes IGST and
// zeroes CGST/SGST; if the entry only carries CGST/SGST they are summed.
// The split/sum fallbacks are defensive: a well-formed catalog always has
// IGST == CGST+SGST, so they only matter for partially populated entries.
//
// The cess rate is the override when given, otherwise the entry's, and is
// clamped to be non-negative. For the zero Entry (unknown code) every rate
// resolves to 0; a bad code never blocks invoice creation.
func ResolveRates(entry catalog.Entry, saleType domain.SaleType, cessOverride *float64) RateSet {
	cgst := entry.CGSTRate
	sgst := entry.SGSTRate
	igst := entry.IGSTRate

	if saleType == domain.SaleTypeIntrastate {
		if cgst == 0 && sgst == 0 && igst > 0 {
			cgst = igst / 2
			sgst = igst / 2
		}
		igst = 0
	} else {
		if igst == 0 && (cgst > 0 || sgst > 0) {
			igst = cgst + sgst
		}
		cgst = 0
		sgst = 0
	}

	cess := entry.CessRate
	if cessOverride != nil {
		cess = *cessOverride
	}
	if cess < 0 {
		cess = 0
	}

	return RateSet{CGST: cgst, SGST: sgst, IGST: igst, Cess: cess}
}
