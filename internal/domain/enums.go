package domain

// SaleType distinguishes same-state from cross-state supplies.
// Intrastate supplies split tax into CGST+SGST; interstate supplies levy IGST.
type SaleType string

const (
	SaleTypeIntrastate SaleType = "Intrastate"
	SaleTypeInterstate SaleType = "Interstate"
)

// PageLabel identifies a print instance of a rendered invoice.
type PageLabel string

const (
	PageOriginal  PageLabel = "ORIGINAL"
	PageDuplicate PageLabel = "DUPLICATE"
)

// PageLabels lists the print instances every invoice document carries, in order.
var PageLabels = []PageLabel{PageOriginal, PageDuplicate}

// TemplateID identifies an invoice template from the closed set shipped with the app.
type TemplateID string

const (
	TemplateStandard     TemplateID = "standard"
	TemplateProfessional TemplateID = "professional"
	TemplateComposition  TemplateID = "composition"
	TemplateInterstate   TemplateID = "interstate"
)

// TemplateMode selects the item-row and totals-row generators for a template.
// It is resolved once at the template registry, never sniffed from template text.
type TemplateMode string

const (
	// ModeDynamic emits a combined tax-column block that follows the sale
	// type: IGST columns for interstate, CGST+SGST columns for intrastate.
	ModeDynamic TemplateMode = "dynamic"
	// ModeDetailed emits all four tax column pairs uniformly, with zeros
	// for whichever regime does not apply.
	ModeDetailed TemplateMode = "detailed"
	// ModeComposition suppresses tax columns entirely; the grand total and
	// amount-in-words equal the taxable value (Bill of Supply).
	ModeComposition TemplateMode = "composition"
	// ModeInterstate emits dedicated IGST-only row markup.
	ModeInterstate TemplateMode = "interstate"
)

// ContactStyle selects how the company contact line is laid out in a template.
type ContactStyle string

const (
	ContactParagraph ContactStyle = "paragraph"
	ContactLabeled   ContactStyle = "labeled"
	ContactInline    ContactStyle = "inline"
)

// ValidationSeverity grades a diagnostic. Only error-severity findings
// block submission; warnings and infos are surfaced but never blocking.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
	ValidationSeverityInfo    ValidationSeverity = "info"
)

// ValidationRuleType categorizes a validation rule.
type ValidationRuleType string

const (
	ValidationRuleRequired   ValidationRuleType = "required"
	ValidationRuleRegex      ValidationRuleType = "regex"
	ValidationRuleSumCheck   ValidationRuleType = "sum_check"
	ValidationRuleCrossField ValidationRuleType = "cross_field"
)
