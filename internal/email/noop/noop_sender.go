package noop

import (
	"context"
	"log"

	"billforge/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, toEmail, toName, invoiceNumber, htmlBody string) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s), %d bytes of HTML", invoiceNumber, toName, toEmail, len(htmlBody))
	return nil
}
