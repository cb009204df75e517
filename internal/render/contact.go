package render

import (
	"fmt"
	"strings"

	"billforge/internal/domain"
)

// contactLine formats the company contact block in the layout idiom the
// template was registered with. Missing optional fields are simply
// omitted; the line never renders a placeholder for an absent value.
func contactLine(style domain.ContactStyle, company domain.Party) string {
	type field struct{ label, value string }
	fields := []field{
		{"GSTIN", company.GSTIN},
		{"Email", company.Email},
		{"Phone", company.Phone},
	}

	var parts []string
	switch style {
	case domain.ContactLabeled:
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf(`<div class="detail-row"><span class="detail-label">%s:</span><span>%s</span></div>`, f.label, f.value))
		}
		return strings.Join(parts, "")
	case domain.ContactInline:
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf(`%s: <strong>%s</strong>`, f.label, f.value))
		}
		return strings.Join(parts, " | ")
	default: // paragraph style
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			parts = append(parts, fmt.Sprintf(`<p>%s: %s</p>`, f.label, f.value))
		}
		return strings.Join(parts, "")
	}
}
