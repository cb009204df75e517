package invoice

import (
	"context"
	"fmt"
	"math"

	"billforge/internal/domain"
)

// moneyTolerance absorbs float drift on currency arithmetic.
const moneyTolerance = 0.01

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= moneyTolerance
}

// mathValidator verifies arithmetic relationships on the computed record.
type mathValidator struct {
	ruleKey  string
	ruleName string
	severity domain.ValidationSeverity
	validate func(*domain.InvoiceRecord) []ValidationResult
}

func (v *mathValidator) RuleKey() string                     { return v.ruleKey }
func (v *mathValidator) RuleName() string                    { return v.ruleName }
func (v *mathValidator) RuleType() domain.ValidationRuleType { return domain.ValidationRuleSumCheck }
func (v *mathValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *mathValidator) Validate(_ context.Context, rec *domain.InvoiceRecord) []ValidationResult {
	return v.validate(rec)
}

func sumCheck(fieldPath, ruleName string, expected, actual float64) ValidationResult {
	passed := approxEqual(expected, actual)
	msg := fmt.Sprintf("%s: %s is consistent", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s expected %.2f, found %.2f", ruleName, fieldPath, expected, actual)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: fmt.Sprintf("%.2f", expected),
		ActualValue:   fmt.Sprintf("%.2f", actual),
		Message:       msg,
	}
}

// MathValidators returns all arithmetic validators.
func MathValidators() []*mathValidator {
	return []*mathValidator{
		{
			ruleKey: "math.item.taxable_value", ruleName: "Math: Item Taxable Value",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				results := make([]ValidationResult, 0, len(r.Items))
				for i := range r.Items {
					it := &r.Items[i]
					fp := fmt.Sprintf("items[%d].taxable_value", i)
					results = append(results, sumCheck(fp, "Math: Item Taxable Value", it.Quantity*it.Rate, it.TaxableValue))
				}
				return results
			},
		},
		{
			ruleKey: "math.item.tax_amounts", ruleName: "Math: Item Tax Amounts",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				var results []ValidationResult
				for i := range r.Items {
					it := &r.Items[i]
					results = append(results,
						sumCheck(fmt.Sprintf("items[%d].cgst_amount", i), "Math: Item Tax Amounts", it.TaxableValue*it.CGSTRate/100, it.CGSTAmount),
						sumCheck(fmt.Sprintf("items[%d].sgst_amount", i), "Math: Item Tax Amounts", it.TaxableValue*it.SGSTRate/100, it.SGSTAmount),
						sumCheck(fmt.Sprintf("items[%d].igst_amount", i), "Math: Item Tax Amounts", it.TaxableValue*it.IGSTRate/100, it.IGSTAmount),
						sumCheck(fmt.Sprintf("items[%d].cess_amount", i), "Math: Item Tax Amounts", it.TaxableValue*it.CessRate/100, it.CessAmount),
					)
				}
				return results
			},
		},
		{
			ruleKey: "math.item.total", ruleName: "Math: Item Total",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				results := make([]ValidationResult, 0, len(r.Items))
				for i := range r.Items {
					it := &r.Items[i]
					fp := fmt.Sprintf("items[%d].total_amount", i)
					expected := it.TaxableValue + it.CGSTAmount + it.SGSTAmount + it.IGSTAmount + it.CessAmount
					results = append(results, sumCheck(fp, "Math: Item Total", expected, it.TotalAmount))
				}
				return results
			},
		},
		{
			ruleKey: "math.totals.sums", ruleName: "Math: Invoice Totals",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				var taxable, cgst, sgst, igst, cess float64
				for i := range r.Items {
					it := &r.Items[i]
					taxable += it.TaxableValue
					cgst += it.CGSTAmount
					sgst += it.SGSTAmount
					igst += it.IGSTAmount
					cess += it.CessAmount
				}
				return []ValidationResult{
					sumCheck("totals.total_taxable_value", "Math: Invoice Totals", taxable, r.Totals.TotalTaxableValue),
					sumCheck("totals.total_cgst", "Math: Invoice Totals", cgst, r.Totals.TotalCGST),
					sumCheck("totals.total_sgst", "Math: Invoice Totals", sgst, r.Totals.TotalSGST),
					sumCheck("totals.total_igst", "Math: Invoice Totals", igst, r.Totals.TotalIGST),
					sumCheck("totals.total_cess", "Math: Invoice Totals", cess, r.Totals.TotalCess),
				}
			},
		},
		{
			ruleKey: "math.totals.grand_total", ruleName: "Math: Grand Total",
			severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				t := r.Totals
				return []ValidationResult{
					sumCheck("totals.total_tax", "Math: Grand Total", t.TotalCGST+t.TotalSGST+t.TotalIGST+t.TotalCess, t.TotalTax),
					sumCheck("totals.grand_total", "Math: Grand Total", t.TotalTaxableValue+t.TotalTax, t.GrandTotal),
				}
			},
		},
	}
}
