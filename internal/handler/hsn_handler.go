package handler

import (
	"github.com/gin-gonic/gin"

	"billforge/internal/catalog"
)

// HSNHandler exposes HSN catalog lookups.
type HSNHandler struct {
	lookup *catalog.Lookup
}

// NewHSNHandler creates a new HSNHandler.
func NewHSNHandler(lookup *catalog.Lookup) *HSNHandler {
	return &HSNHandler{lookup: lookup}
}

// Search handles GET /api/v1/hsn
// @Summary Search the HSN catalog
// @Description Search catalog entries by code prefix or description substring; an empty query returns all entries
// @Tags hsn
// @Produce json
// @Param q query string false "Code prefix or description fragment"
// @Success 200 {object} Response{data=[]catalog.Entry} "Matching catalog entries"
// @Router /hsn [get]
func (h *HSNHandler) Search(c *gin.Context) {
	RespondOK(c, h.lookup.Search(c.Query("q")))
}
