package render

import (
	"billforge/internal/domain"
)

// Template describes one invoice template from the closed built-in set.
// Its rendering mode and contact style are fixed here, at the registry
// boundary, so the injector never has to sniff the template text to decide
// which row generators to use.
type Template struct {
	ID          domain.TemplateID   `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Mode        domain.TemplateMode `json:"mode"`
	Contact     domain.ContactStyle `json:"-"`
	File        string              `json:"-"`
}

// Registry resolves template identifiers to their metadata.
type Registry struct {
	byID  map[domain.TemplateID]Template
	order []domain.TemplateID
}

// NewRegistry builds the registry with the shipped template set.
func NewRegistry() *Registry {
	templates := []Template{
		{
			ID:          domain.TemplateStandard,
			Name:        "Standard",
			Description: "Classic layout with sale-type-driven tax columns",
			Mode:        domain.ModeDynamic,
			Contact:     domain.ContactParagraph,
			File:        "standard.html",
		},
		{
			ID:          domain.TemplateProfessional,
			Name:        "Professional",
			Description: "Detailed layout showing all four tax column pairs",
			Mode:        domain.ModeDetailed,
			Contact:     domain.ContactLabeled,
			File:        "professional.html",
		},
		{
			ID:          domain.TemplateComposition,
			Name:        "Composition Scheme",
			Description: "Bill of Supply for composition dealers, no tax collected",
			Mode:        domain.ModeComposition,
			Contact:     domain.ContactInline,
			File:        "composition.html",
		},
		{
			ID:          domain.TemplateInterstate,
			Name:        "Interstate Supply",
			Description: "Tax invoice for interstate transport with IGST-only rows",
			Mode:        domain.ModeInterstate,
			Contact:     domain.ContactLabeled,
			File:        "interstate.html",
		},
	}

	r := &Registry{byID: make(map[domain.TemplateID]Template, len(templates))}
	for _, t := range templates {
		r.byID[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

// Resolve returns the template for an identifier.
func (r *Registry) Resolve(id domain.TemplateID) (Template, error) {
	t, ok := r.byID[id]
	if !ok {
		return Template{}, domain.ErrTemplateNotFound
	}
	return t, nil
}

// List returns all templates in registration order.
func (r *Registry) List() []Template {
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}
