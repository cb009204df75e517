package port

import "context"

// EmailSender defines the contract for sending invoice documents.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, toEmail, toName, invoiceNumber, htmlBody string) error
}
