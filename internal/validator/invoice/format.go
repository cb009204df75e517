package invoice

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"billforge/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
)

// formatValidator checks a field against a regex or format rule.
type formatValidator struct {
	ruleKey   string
	ruleName  string
	fieldPath string
	severity  domain.ValidationSeverity
	validate  func(*domain.InvoiceRecord) []ValidationResult
}

func (v *formatValidator) RuleKey() string                     { return v.ruleKey }
func (v *formatValidator) RuleName() string                    { return v.ruleName }
func (v *formatValidator) RuleType() domain.ValidationRuleType { return domain.ValidationRuleRegex }
func (v *formatValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *formatValidator) Validate(_ context.Context, rec *domain.InvoiceRecord) []ValidationResult {
	return v.validate(rec)
}

// gstinCheck validates the 15-character GSTIN format. The literal value
// "UNREGISTERED" is accepted for parties without a registration.
func gstinCheck(fieldPath, value, ruleName string) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "15-char GSTIN format", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	if strings.EqualFold(strings.TrimSpace(value), "UNREGISTERED") {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "15-char GSTIN format", ActualValue: value,
			Message: fmt.Sprintf("%s: party is unregistered", ruleName),
		}
	}
	passed := gstinPattern.MatchString(value)
	msg := fmt.Sprintf("%s: %s matches expected format", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s does not match expected format", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "15-char GSTIN format", ActualValue: value, Message: msg,
	}
}

func dateCheck(fieldPath, value, ruleName string) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "parseable date", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping date check", ruleName),
		}
	}
	_, err := parseDate(value)
	passed := err == nil
	msg := fmt.Sprintf("%s: %s is a valid date", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a parseable date", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "parseable date", ActualValue: value, Message: msg,
	}
}

func stateCodeCheck(fieldPath, value, ruleName string) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "2-digit state code (01-38)", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping state code check", ruleName),
		}
	}
	passed := false
	if len(value) == 2 {
		code, err := strconv.Atoi(value)
		if err == nil && code >= 1 && code <= 38 {
			passed = true
		}
	}
	msg := fmt.Sprintf("%s: %s is a valid state code", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a valid 2-digit state code (01-38)", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "2-digit state code (01-38)", ActualValue: value, Message: msg,
	}
}

// parseDate tries common date formats.
func parseDate(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02-01-2006",
		"02/01/2006",
		"2006/01/02",
		"02 Jan 2006",
		"2 Jan 2006",
		"Jan 02, 2006",
		"January 02, 2006",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}

// FormatValidators returns all format validators.
func FormatValidators() []*formatValidator {
	return []*formatValidator{
		{
			ruleKey: "fmt.company.gstin", ruleName: "Format: Company GSTIN",
			fieldPath: "company.gstin", severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{gstinCheck("company.gstin", r.Company.GSTIN, "Format: Company GSTIN")}
			},
		},
		{
			ruleKey: "fmt.receiver.gstin", ruleName: "Format: Receiver GSTIN",
			fieldPath: "receiver.gstin", severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{gstinCheck("receiver.gstin", r.Receiver.GSTIN, "Format: Receiver GSTIN")}
			},
		},
		{
			ruleKey: "fmt.consignee.gstin", ruleName: "Format: Consignee GSTIN",
			fieldPath: "consignee.gstin", severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{gstinCheck("consignee.gstin", r.Consignee.GSTIN, "Format: Consignee GSTIN")}
			},
		},
		{
			ruleKey: "fmt.company.state_code", ruleName: "Format: Company State Code",
			fieldPath: "company.state_code", severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{stateCodeCheck("company.state_code", r.Company.StateCode, "Format: Company State Code")}
			},
		},
		{
			ruleKey: "fmt.receiver.state_code", ruleName: "Format: Receiver State Code",
			fieldPath: "receiver.state_code", severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{stateCodeCheck("receiver.state_code", r.Receiver.StateCode, "Format: Receiver State Code")}
			},
		},
		{
			ruleKey: "fmt.consignee.state_code", ruleName: "Format: Consignee State Code",
			fieldPath: "consignee.state_code", severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{stateCodeCheck("consignee.state_code", r.Consignee.StateCode, "Format: Consignee State Code")}
			},
		},
		{
			ruleKey: "fmt.invoice.date", ruleName: "Format: Invoice Date",
			fieldPath: "invoice_date", severity: domain.ValidationSeverityError,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{dateCheck("invoice_date", r.InvoiceDate, "Format: Invoice Date")}
			},
		},
		{
			ruleKey: "fmt.transport.date_of_supply", ruleName: "Format: Date of Supply",
			fieldPath: "transport.date_of_supply", severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				return []ValidationResult{dateCheck("transport.date_of_supply", r.Transport.DateOfSupply, "Format: Date of Supply")}
			},
		},
		{
			ruleKey: "fmt.item.hsn", ruleName: "Format: HSN Code",
			fieldPath: "items[i].hsn_code", severity: domain.ValidationSeverityWarning,
			validate: func(r *domain.InvoiceRecord) []ValidationResult {
				results := make([]ValidationResult, 0, len(r.Items))
				for i := range r.Items {
					fp := fmt.Sprintf("items[%d].hsn_code", i)
					val := r.Items[i].HSNCode
					if val == "" {
						results = append(results, ValidationResult{
							Passed: true, FieldPath: fp,
							ExpectedValue: "4-8 digit HSN code", ActualValue: val,
							Message: "Format: HSN Code: field is empty, skipping format check",
						})
						continue
					}
					passed := hsnPattern.MatchString(val)
					msg := fmt.Sprintf("Format: HSN Code: %s matches expected format", fp)
					if !passed {
						msg = fmt.Sprintf("Format: HSN Code: %s does not match expected format", fp)
					}
					results = append(results, ValidationResult{
						Passed: passed, FieldPath: fp,
						ExpectedValue: "4-8 digit HSN code", ActualValue: val, Message: msg,
					})
				}
				return results
			},
		},
	}
}
