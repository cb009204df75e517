package invoice

import (
	"context"

	"billforge/internal/domain"
)

// ValidationResult is the outcome of one rule applied to one field.
type ValidationResult struct {
	Passed        bool   `json:"passed"`
	FieldPath     string `json:"field_path"`
	ExpectedValue string `json:"expected_value,omitempty"`
	ActualValue   string `json:"actual_value,omitempty"`
	Message       string `json:"message"`
}

// Diagnostic is a failed check annotated with its rule metadata. Only
// error-severity diagnostics block invoice submission.
type Diagnostic struct {
	RuleKey   string                    `json:"rule_key"`
	RuleName  string                    `json:"rule_name"`
	RuleType  domain.ValidationRuleType `json:"rule_type"`
	Severity  domain.ValidationSeverity `json:"severity"`
	FieldPath string                    `json:"field_path"`
	Expected  string                    `json:"expected,omitempty"`
	Actual    string                    `json:"actual,omitempty"`
	Message   string                    `json:"message"`
}

// Run applies every built-in rule to the record and returns the failures.
func Run(ctx context.Context, rec *domain.InvoiceRecord) []Diagnostic {
	var diags []Diagnostic
	for _, v := range AllBuiltinValidators() {
		for _, res := range v.Validate(ctx, rec) {
			if res.Passed {
				continue
			}
			diags = append(diags, Diagnostic{
				RuleKey:   v.RuleKey(),
				RuleName:  v.RuleName(),
				RuleType:  v.RuleType(),
				Severity:  v.Severity(),
				FieldPath: res.FieldPath,
				Expected:  res.ExpectedValue,
				Actual:    res.ActualValue,
				Message:   res.Message,
			})
		}
	}
	return diags
}

// HasBlocking reports whether any diagnostic carries error severity.
func HasBlocking(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == domain.ValidationSeverityError {
			return true
		}
	}
	return false
}
