package handler

import (
	"github.com/gin-gonic/gin"

	"billforge/internal/render"
)

// TemplateHandler exposes the built-in template registry.
type TemplateHandler struct {
	registry *render.Registry
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(registry *render.Registry) *TemplateHandler {
	return &TemplateHandler{registry: registry}
}

// List handles GET /api/v1/templates
// @Summary List invoice templates
// @Description List the built-in templates available for rendering
// @Tags templates
// @Produce json
// @Success 200 {object} Response{data=[]render.Template} "Available templates"
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	RespondOK(c, h.registry.List())
}
