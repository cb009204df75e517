package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billforge/internal/domain"
	"billforge/internal/render"
)

func TestRegistry_ResolveKnown(t *testing.T) {
	r := render.NewRegistry()

	tpl, err := r.Resolve(domain.TemplateStandard)
	assert.NoError(t, err)
	assert.Equal(t, domain.ModeDynamic, tpl.Mode)
	assert.Equal(t, "standard.html", tpl.File)

	tpl, err = r.Resolve(domain.TemplateComposition)
	assert.NoError(t, err)
	assert.Equal(t, domain.ModeComposition, tpl.Mode)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := render.NewRegistry()

	_, err := r.Resolve("fancy")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestRegistry_ListOrderAndModes(t *testing.T) {
	r := render.NewRegistry()

	templates := r.List()
	assert.Len(t, templates, 4)
	assert.Equal(t, domain.TemplateStandard, templates[0].ID)
	assert.Equal(t, domain.TemplateProfessional, templates[1].ID)
	assert.Equal(t, domain.TemplateComposition, templates[2].ID)
	assert.Equal(t, domain.TemplateInterstate, templates[3].ID)
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.File)
	}
}
