package handler

import (
	"billforge/internal/domain"
	"billforge/internal/validator/invoice"
)

// Documentation-only response shapes for swagger generation.

// Response is the generic success envelope.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody is the generic error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"invoice deleted"`
}

// ComputeResponse is the payload returned by invoice computation.
type ComputeResponse struct {
	Invoice     *domain.InvoiceRecord `json:"invoice"`
	Diagnostics []invoice.Diagnostic  `json:"diagnostics"`
}

// CreateInvoiceResponse is the payload returned when an invoice is persisted.
type CreateInvoiceResponse struct {
	Invoice     *domain.Invoice      `json:"invoice"`
	Diagnostics []invoice.Diagnostic `json:"diagnostics"`
}

// RenderResponse carries rendered HTML keyed by print page label.
type RenderResponse struct {
	Template domain.TemplateID           `json:"template" example:"standard"`
	Pages    map[domain.PageLabel]string `json:"pages"`
}

// ArchiveResponse carries a presigned artifact URL.
type ArchiveResponse struct {
	URL string `json:"url" example:"https://bucket.s3.ap-south-1.amazonaws.com/invoices/2026/08/..."`
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
