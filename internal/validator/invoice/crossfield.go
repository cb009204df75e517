package invoice

import (
	"context"
	"fmt"
	"strings"

	"billforge/internal/domain"
	"billforge/internal/tax"
)

// crossFieldValidator checks relationships between different fields.
type crossFieldValidator struct {
	ruleKey  string
	ruleName string
	severity domain.ValidationSeverity
	validate func(*domain.InvoiceRecord) []ValidationResult
}

func (v *crossFieldValidator) RuleKey() string  { return v.ruleKey }
func (v *crossFieldValidator) RuleName() string { return v.ruleName }
func (v *crossFieldValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleCrossField
}
func (v *crossFieldValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *crossFieldValidator) Validate(_ context.Context, rec *domain.InvoiceRecord) []ValidationResult {
	return v.validate(rec)
}

// CrossFieldValidators returns all cross-field validators.
func CrossFieldValidators() []*crossFieldValidator {
	return []*crossFieldValidator{
		{
			ruleKey: "xf.company.gstin_state", ruleName: "Cross-field: Company GSTIN-State Match",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return gstinStateCheck("company", r.Company.GSTIN, r.Company.StateCode)
			},
		},
		{
			ruleKey: "xf.receiver.gstin_state", ruleName: "Cross-field: Receiver GSTIN-State Match",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return gstinStateCheck("receiver", r.Receiver.GSTIN, r.Receiver.StateCode)
			},
		},
		{
			ruleKey: "xf.consignee.gstin_state", ruleName: "Cross-field: Consignee GSTIN-State Match",
			severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return gstinStateCheck("consignee", r.Consignee.GSTIN, r.Consignee.StateCode)
			},
		},
		{
			// The stored sale type may legitimately diverge from the one the
			// state codes imply when the override flag is set; the divergence
			// is still reported so the conflict stays visible on the record.
			ruleKey: "xf.sale_type.state_codes", ruleName: "Cross-field: Sale Type vs State Codes",
			severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				if r.Company.StateCode == "" || r.Receiver.StateCode == "" {
					return []ValidationResult{{
						Passed: true, FieldPath: "sale_type",
						Message: "Cross-field: Sale Type vs State Codes: state codes missing, skipping",
					}}
				}
				derived := tax.Classify(r.Company.StateCode, r.Receiver.StateCode)
				passed := r.SaleType == derived
				msg := "Cross-field: Sale Type vs State Codes: sale type matches the state codes"
				if !passed {
					msg = fmt.Sprintf("Cross-field: Sale Type vs State Codes: state codes imply %s but invoice is marked %s", derived, r.SaleType)
					if r.SaleTypeOverridden {
						msg += " (manual override in effect)"
					}
				}
				return []ValidationResult{{
					Passed: passed, FieldPath: "sale_type",
					ExpectedValue: string(derived), ActualValue: string(r.SaleType), Message: msg,
				}}
			},
		},
		{
			ruleKey: "xf.items.intrastate_regime", ruleName: "Cross-field: Intrastate Tax Regime",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				if r.SaleType != domain.SaleTypeIntrastate {
					return nil
				}
				var results []ValidationResult
				for i := range r.Items {
					it := &r.Items[i]
					passed := it.IGSTRate == 0 && it.IGSTAmount == 0
					fp := fmt.Sprintf("items[%d]", i)
					msg := fmt.Sprintf("Cross-field: Intrastate Tax Regime: %s carries no IGST", fp)
					if !passed {
						msg = fmt.Sprintf("Cross-field: Intrastate Tax Regime: %s carries IGST on an intrastate invoice", fp)
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "IGST=0",
						ActualValue:   fmt.Sprintf("IGST rate=%.2f amount=%.2f", it.IGSTRate, it.IGSTAmount),
						Message:       msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "xf.items.interstate_regime", ruleName: "Cross-field: Interstate Tax Regime",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				if r.SaleType != domain.SaleTypeInterstate {
					return nil
				}
				var results []ValidationResult
				for i := range r.Items {
					it := &r.Items[i]
					passed := it.CGSTRate == 0 && it.CGSTAmount == 0 && it.SGSTRate == 0 && it.SGSTAmount == 0
					fp := fmt.Sprintf("items[%d]", i)
					msg := fmt.Sprintf("Cross-field: Interstate Tax Regime: %s carries no CGST/SGST", fp)
					if !passed {
						msg = fmt.Sprintf("Cross-field: Interstate Tax Regime: %s carries CGST/SGST on an interstate invoice", fp)
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "CGST=0, SGST=0",
						ActualValue:   fmt.Sprintf("CGST=%.2f, SGST=%.2f", it.CGSTRate, it.SGSTRate),
						Message:       msg,
					})
				}
				return results
			},
		},
		{
			ruleKey: "xf.parties.different_gstin", ruleName: "Cross-field: Different Party GSTINs",
			severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				company, receiver := r.Company.GSTIN, r.Receiver.GSTIN
				if company == "" || receiver == "" || strings.EqualFold(receiver, "UNREGISTERED") {
					return []ValidationResult{{
						Passed: true, FieldPath: "receiver.gstin",
						Message: "Cross-field: Different Party GSTINs: GSTINs missing, skipping",
					}}
				}
				passed := company != receiver
				msg := "Cross-field: Different Party GSTINs: company and receiver have different GSTINs"
				if !passed {
					msg = "Cross-field: Different Party GSTINs: company and receiver have the same GSTIN"
				}
				return []ValidationResult{{
					Passed: passed, FieldPath: "receiver.gstin",
					ExpectedValue: "company.gstin != receiver.gstin",
					ActualValue:   fmt.Sprintf("company=%s, receiver=%s", company, receiver),
					Message:       msg,
				}}
			},
		},
	}
}

func gstinStateCheck(party, gstin, stateCode string) []ValidationResult {
	fieldPath := fmt.Sprintf("%s.gstin", party)
	if gstin == "" || stateCode == "" || strings.EqualFold(strings.TrimSpace(gstin), "UNREGISTERED") {
		return []ValidationResult{{
			Passed: true, FieldPath: fieldPath,
			Message: fmt.Sprintf("Cross-field: %s GSTIN-State Match: fields missing, skipping", party),
		}}
	}
	if len(gstin) < 2 {
		return []ValidationResult{{
			Passed: false, FieldPath: fieldPath,
			ExpectedValue: fmt.Sprintf("GSTIN[0:2] == %s", stateCode),
			ActualValue:   gstin,
			Message:       fmt.Sprintf("Cross-field: %s GSTIN-State Match: GSTIN too short", party),
		}}
	}
	gstinState := gstin[:2]
	passed := gstinState == stateCode
	msg := fmt.Sprintf("Cross-field: %s GSTIN-State Match: GSTIN state code matches", party)
	if !passed {
		msg = fmt.Sprintf("Cross-field: %s GSTIN-State Match: GSTIN prefix %s does not match state_code %s", party, gstinState, stateCode)
	}
	return []ValidationResult{{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: fmt.Sprintf("GSTIN[0:2] == %s", stateCode),
		ActualValue:   gstinState, Message: msg,
	}}
}
