package tax

import "billforge/internal/domain"

// Classify derives the sale type from the two state codes.
// Equal codes mean an intrastate supply; differing codes mean interstate.
// If either code is missing the sale defaults to interstate.
func Classify(companyStateCode, counterpartyStateCode string) domain.SaleType {
	if companyStateCode != "" && counterpartyStateCode != "" {
		if companyStateCode == counterpartyStateCode {
			return domain.SaleTypeIntrastate
		}
		return domain.SaleTypeInterstate
	}
	return domain.SaleTypeInterstate
}

// Reconcile merges a stored sale type with the value freshly derived from
// the state codes. A manual override is preserved for as long as it
// conflicts with the derived value, and the overridden flag stays set so the
// caller can surface a warning. Once the derived value agrees again the
// record returns to auto mode. GSTIN-driven updates therefore never clobber
// a deliberate user edit, but the record self-heals when the states realign.
func Reconcile(current domain.SaleType, overridden bool, companyStateCode, counterpartyStateCode string) (domain.SaleType, bool) {
	derived := Classify(companyStateCode, counterpartyStateCode)
	if current == "" && !overridden {
		return derived, false
	}
	if derived == current {
		return current, false
	}
	return current, true
}
