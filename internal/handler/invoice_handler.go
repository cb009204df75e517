package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billforge/internal/domain"
	"billforge/internal/service"
)

// InvoiceHandler handles invoice lifecycle endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Compute handles POST /api/v1/invoices/compute
// @Summary Compute an invoice
// @Description Derive sale type, tax amounts, totals and amount-in-words without persisting
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.ComputeInvoiceInput true "Invoice input"
// @Success 200 {object} Response{data=ComputeResponse} "Computed invoice"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Router /invoices/compute [post]
func (h *InvoiceHandler) Compute(c *gin.Context) {
	var input service.ComputeInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rec, diags, err := h.invoiceService.Compute(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"invoice": rec, "diagnostics": diags})
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Validate, compute and persist an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.ComputeInvoiceInput true "Invoice input"
// @Success 201 {object} Response{data=CreateInvoiceResponse} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Invoice number already exists"
// @Failure 422 {object} ErrorResponseBody "Blocking validation diagnostics"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.ComputeInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, diags, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			RespondErrorDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
				"invoice failed validation", diags)
			return
		}
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"invoice": inv, "diagnostics": diags})
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description List persisted invoices, newest first
// @Tags invoices
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta} "List of invoices"
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// Delete handles DELETE /api/v1/invoices/:id
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Invoice deleted"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice deleted"})
}

// Render handles GET /api/v1/invoices/:id/render
// @Summary Render an invoice as HTML
// @Description Render the ORIGINAL and DUPLICATE pages of an invoice with the selected template
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param template query string false "Template identifier" default(standard)
// @Success 200 {object} Response{data=RenderResponse} "Rendered pages keyed by page label"
// @Failure 404 {object} ErrorResponseBody "Invoice or template not found"
// @Router /invoices/{id}/render [get]
func (h *InvoiceHandler) Render(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}
	templateID := domain.TemplateID(c.DefaultQuery("template", string(domain.TemplateStandard)))

	pages, err := h.invoiceService.Render(c.Request.Context(), id, templateID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"template": templateID, "pages": pages})
}

// ExportPDF handles GET /api/v1/invoices/:id/pdf
// @Summary Download an invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {file} binary "PDF document"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	data, filename, err := h.invoiceService.ExportPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportCSV handles GET /api/v1/invoices/csv
// @Summary Download the invoice register as CSV
// @Tags invoices
// @Produce text/csv
// @Success 200 {file} binary "CSV register"
// @Router /invoices/csv [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	data, filename, err := h.invoiceService.ExportRegisterCSV(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Email handles POST /api/v1/invoices/:id/email
// @Summary Email a rendered invoice
// @Description Send the rendered invoice to the receiver or an explicit recipient
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param request body service.EmailInvoiceInput false "Recipient override"
// @Success 200 {object} Response{data=MessageResponse} "Email queued"
// @Failure 400 {object} ErrorResponseBody "No recipient"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id}/email [post]
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	// The body is optional; without it the receiver email on the record is used.
	var input service.EmailInvoiceInput
	_ = c.ShouldBindJSON(&input)

	if err := h.invoiceService.Email(c.Request.Context(), id, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice email sent"})
}

// Archive handles GET /api/v1/invoices/:id/archive
// @Summary Archive an invoice PDF and presign its URL
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=ArchiveResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 503 {object} ErrorResponseBody "Archiving not configured"
// @Router /invoices/{id}/archive [get]
func (h *InvoiceHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	url, err := h.invoiceService.ArchiveURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
