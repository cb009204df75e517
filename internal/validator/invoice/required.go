package invoice

import (
	"context"
	"fmt"

	"billforge/internal/domain"
)

// requiredFieldValidator checks that a required field is not empty.
type requiredFieldValidator struct {
	ruleKey     string
	ruleName    string
	fieldPath   string
	severity    domain.ValidationSeverity
	extract     func(*domain.InvoiceRecord) string
	perItem     bool // true for line-item level checks
	extractItem func(*domain.ComputedLineItem) string
}

func (v *requiredFieldValidator) RuleKey() string  { return v.ruleKey }
func (v *requiredFieldValidator) RuleName() string { return v.ruleName }
func (v *requiredFieldValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleRequired
}
func (v *requiredFieldValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *requiredFieldValidator) Validate(_ context.Context, rec *domain.InvoiceRecord) []ValidationResult {
	if v.perItem {
		var results []ValidationResult
		for i := range rec.Items {
			item := &rec.Items[i]
			val := v.extractItem(item)
			fieldPath := fmt.Sprintf("items[%d].%s", i, stripPrefix(v.fieldPath))
			results = append(results, ValidationResult{
				Passed:        val != "",
				FieldPath:     fieldPath,
				ExpectedValue: "non-empty value",
				ActualValue:   val,
				Message:       fieldMessage(val != "", v.ruleName, fieldPath),
			})
		}
		return results
	}

	val := v.extract(rec)
	return []ValidationResult{{
		Passed:        val != "",
		FieldPath:     v.fieldPath,
		ExpectedValue: "non-empty value",
		ActualValue:   val,
		Message:       fieldMessage(val != "", v.ruleName, v.fieldPath),
	}}
}

func fieldMessage(passed bool, ruleName, fieldPath string) string {
	if passed {
		return fmt.Sprintf("%s: %s is present", ruleName, fieldPath)
	}
	return fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath)
}

func stripPrefix(fieldPath string) string {
	// "items[i].description" → "description"
	for i := len(fieldPath) - 1; i >= 0; i-- {
		if fieldPath[i] == '.' {
			return fieldPath[i+1:]
		}
	}
	return fieldPath
}

// RequiredFieldValidators returns all required field validators.
func RequiredFieldValidators() []*requiredFieldValidator {
	return []*requiredFieldValidator{
		{
			ruleKey: "req.invoice.number", ruleName: "Required: Invoice Number",
			fieldPath: "invoice_number", severity: domain.ValidationSeverityError,
			extract: func(r *domain.InvoiceRecord) string { return r.InvoiceNumber },
		},
		{
			ruleKey: "req.invoice.date", ruleName: "Required: Invoice Date",
			fieldPath: "invoice_date", severity: domain.ValidationSeverityError,
			extract: func(r *domain.InvoiceRecord) string { return r.InvoiceDate },
		},
		{
			ruleKey: "req.company.name", ruleName: "Required: Company Name",
			fieldPath: "company.name", severity: domain.ValidationSeverityError,
			extract: func(r *domain.InvoiceRecord) string { return r.Company.Name },
		},
		{
			ruleKey: "req.company.gstin", ruleName: "Required: Company GSTIN",
			fieldPath: "company.gstin", severity: domain.ValidationSeverityError,
			extract: func(r *domain.InvoiceRecord) string { return r.Company.GSTIN },
		},
		{
			ruleKey: "req.company.state_code", ruleName: "Required: Company State Code",
			fieldPath: "company.state_code", severity: domain.ValidationSeverityError,
			extract: func(r *domain.InvoiceRecord) string { return r.Company.StateCode },
		},
		{
			ruleKey: "req.receiver.name", ruleName: "Required: Receiver Name",
			fieldPath: "receiver.name", severity: domain.ValidationSeverityError,
			extract: func(r *domain.InvoiceRecord) string { return r.Receiver.Name },
		},
		{
			ruleKey: "req.receiver.state_code", ruleName: "Required: Receiver State Code",
			fieldPath: "receiver.state_code", severity: domain.ValidationSeverityWarning,
			extract: func(r *domain.InvoiceRecord) string { return r.Receiver.StateCode },
		},
		{
			ruleKey: "req.item.description", ruleName: "Required: Item Description",
			fieldPath: "items[i].description", severity: domain.ValidationSeverityWarning,
			perItem: true, extractItem: func(it *domain.ComputedLineItem) string { return it.Description },
		},
		{
			ruleKey: "req.item.hsn", ruleName: "Required: Item HSN Code",
			fieldPath: "items[i].hsn_code", severity: domain.ValidationSeverityWarning,
			perItem: true, extractItem: func(it *domain.ComputedLineItem) string { return it.HSNCode },
		},
	}
}
