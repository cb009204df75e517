package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"billforge/internal/catalog"
	"billforge/internal/config"
	"billforge/internal/csvexport"
	"billforge/internal/domain"
	"billforge/internal/pdf"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/tax"
	"billforge/internal/validator/invoice"
)

// ComputeInvoiceInput is the DTO for computing or creating an invoice.
type ComputeInvoiceInput struct {
	Company   domain.Party `json:"company" binding:"required"`
	Receiver  domain.Party `json:"receiver" binding:"required"`
	Consignee domain.Party `json:"consignee"`

	InvoiceNumber string `json:"invoice_number" binding:"required"`
	InvoiceDate   string `json:"invoice_date" binding:"required"`
	InvoiceType   string `json:"invoice_type"`
	// SaleType may pin the classification; left empty it is derived from
	// the company and receiver state codes.
	SaleType           domain.SaleType `json:"sale_type"`
	SaleTypeOverridden bool            `json:"sale_type_overridden"`
	ReverseCharge      bool            `json:"reverse_charge"`

	Transport domain.Transport       `json:"transport"`
	Items     []domain.LineItemInput `json:"items" binding:"required"`
	Terms     string                 `json:"terms"`
}

// EmailInvoiceInput is the DTO for mailing a rendered invoice.
type EmailInvoiceInput struct {
	ToEmail  string            `json:"to_email"`
	ToName   string            `json:"to_name"`
	Template domain.TemplateID `json:"template"`
}

// InvoiceService defines the invoice lifecycle contract.
type InvoiceService interface {
	Compute(ctx context.Context, input ComputeInvoiceInput) (*domain.InvoiceRecord, []invoice.Diagnostic, error)
	Create(ctx context.Context, input ComputeInvoiceInput) (*domain.Invoice, []invoice.Diagnostic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Render(ctx context.Context, id uuid.UUID, templateID domain.TemplateID) (map[domain.PageLabel]string, error)
	ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error)
	ExportRegisterCSV(ctx context.Context) ([]byte, string, error)
	Email(ctx context.Context, id uuid.UUID, input EmailInvoiceInput) error
	ArchiveURL(ctx context.Context, id uuid.UUID) (string, error)
}

type invoiceService struct {
	repo      port.InvoiceRepository
	lookup    *catalog.Lookup
	registry  *render.Registry
	templates port.TemplateSource
	pdf       *pdf.Renderer
	sender    port.EmailSender
	storage   port.ObjectStorage
	archive   config.ArchiveConfig
}

// NewInvoiceService creates a new InvoiceService implementation.
// storage may be nil when archiving is disabled.
func NewInvoiceService(
	repo port.InvoiceRepository,
	lookup *catalog.Lookup,
	registry *render.Registry,
	templates port.TemplateSource,
	pdfRenderer *pdf.Renderer,
	sender port.EmailSender,
	storage port.ObjectStorage,
	archive config.ArchiveConfig,
) InvoiceService {
	return &invoiceService{
		repo:      repo,
		lookup:    lookup,
		registry:  registry,
		templates: templates,
		pdf:       pdfRenderer,
		sender:    sender,
		storage:   storage,
		archive:   archive,
	}
}

// assemble derives the full record from the raw input.
func (s *invoiceService) assemble(input ComputeInvoiceInput) *domain.InvoiceRecord {
	consignee := input.Consignee
	if consignee.Name == "" {
		consignee = input.Receiver
	}

	saleType, overridden := tax.Reconcile(
		input.SaleType, input.SaleTypeOverridden,
		input.Company.StateCode, input.Receiver.StateCode,
	)

	items := tax.ComputeItems(input.Items, saleType, s.lookup)
	totals := tax.Aggregate(items)

	return &domain.InvoiceRecord{
		Company:            input.Company,
		Receiver:           input.Receiver,
		Consignee:          consignee,
		InvoiceNumber:      input.InvoiceNumber,
		InvoiceDate:        input.InvoiceDate,
		InvoiceType:        input.InvoiceType,
		SaleType:           saleType,
		SaleTypeOverridden: overridden,
		ReverseCharge:      input.ReverseCharge,
		Transport:          input.Transport,
		Items:              items,
		Totals:             totals,
		Terms:              input.Terms,
	}
}

func (s *invoiceService) Compute(ctx context.Context, input ComputeInvoiceInput) (*domain.InvoiceRecord, []invoice.Diagnostic, error) {
	rec := s.assemble(input)
	diags := invoice.Run(ctx, rec)
	return rec, diags, nil
}

func (s *invoiceService) Create(ctx context.Context, input ComputeInvoiceInput) (*domain.Invoice, []invoice.Diagnostic, error) {
	rec := s.assemble(input)
	diags := invoice.Run(ctx, rec)
	if invoice.HasBlocking(diags) {
		return nil, diags, domain.ErrValidationFailed
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, diags, fmt.Errorf("invoiceService.Create marshal: %w", err)
	}

	inv := &domain.Invoice{
		InvoiceNumber: rec.InvoiceNumber,
		InvoiceDate:   rec.InvoiceDate,
		ReceiverName:  rec.Receiver.Name,
		SaleType:      rec.SaleType,
		GrandTotal:    rec.Totals.GrandTotal,
		Record:        raw,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, diags, err
	}
	return inv, diags, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// record loads and decodes the stored record for an invoice.
func (s *invoiceService) record(ctx context.Context, id uuid.UUID) (*domain.InvoiceRecord, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var rec domain.InvoiceRecord
	if err := json.Unmarshal(inv.Record, &rec); err != nil {
		return nil, fmt.Errorf("invoiceService: decoding record %s: %w", id, err)
	}
	return &rec, nil
}

func (s *invoiceService) Render(ctx context.Context, id uuid.UUID, templateID domain.TemplateID) (map[domain.PageLabel]string, error) {
	rec, err := s.record(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl, err := s.registry.Resolve(templateID)
	if err != nil {
		return nil, err
	}
	source, err := s.templates.Load(ctx, tpl.File)
	if err != nil {
		return nil, err
	}
	return render.RenderPages(tpl, source, rec), nil
}

func (s *invoiceService) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	rec, err := s.record(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.pdf.Render(rec)
	if err != nil {
		return nil, "", err
	}
	filename := csvexport.SanitizeFilename(rec.InvoiceNumber) + ".pdf"

	// Best-effort archive; export never fails because S3 is down.
	if s.archive.Enabled && s.storage != nil {
		if _, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.archive.Bucket,
			Key:         archiveKey(id),
			Body:        strings.NewReader(string(data)),
			ContentType: "application/pdf",
			Size:        int64(len(data)),
		}); err != nil {
			log.Printf("[WARN] archiving invoice %s: %v", id, err)
		}
	}
	return data, filename, nil
}

func (s *invoiceService) ExportRegisterCSV(ctx context.Context) ([]byte, string, error) {
	var all []domain.Invoice
	const pageSize = 500
	for offset := 0; ; offset += pageSize {
		batch, total, err := s.repo.List(ctx, offset, pageSize)
		if err != nil {
			return nil, "", err
		}
		all = append(all, batch...)
		if len(all) >= total || len(batch) == 0 {
			break
		}
	}

	var buf strings.Builder
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", err
	}
	if err := w.WriteInvoices(all); err != nil {
		return nil, "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return []byte(buf.String()), csvexport.BuildFilename("invoice_register"), nil
}

func (s *invoiceService) Email(ctx context.Context, id uuid.UUID, input EmailInvoiceInput) error {
	rec, err := s.record(ctx, id)
	if err != nil {
		return err
	}

	toEmail := input.ToEmail
	toName := input.ToName
	if toEmail == "" {
		toEmail = rec.Receiver.Email
		toName = rec.Receiver.Name
	}
	if toEmail == "" {
		return domain.ErrNoRecipient
	}

	templateID := input.Template
	if templateID == "" {
		templateID = domain.TemplateStandard
	}
	tpl, err := s.registry.Resolve(templateID)
	if err != nil {
		return err
	}
	source, err := s.templates.Load(ctx, tpl.File)
	if err != nil {
		return err
	}
	html := render.Render(tpl, source, rec, domain.PageOriginal)

	return s.sender.SendInvoiceEmail(ctx, toEmail, toName, rec.InvoiceNumber, html)
}

// ArchiveURL uploads the current PDF rendition to the archive bucket and
// returns a presigned download URL.
func (s *invoiceService) ArchiveURL(ctx context.Context, id uuid.UUID) (string, error) {
	if !s.archive.Enabled || s.storage == nil {
		return "", domain.ErrArchiveDisabled
	}
	rec, err := s.record(ctx, id)
	if err != nil {
		return "", err
	}
	data, err := s.pdf.Render(rec)
	if err != nil {
		return "", err
	}
	key := archiveKey(id)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.archive.Bucket,
		Key:         key,
		Body:        strings.NewReader(string(data)),
		ContentType: "application/pdf",
		Size:        int64(len(data)),
	}); err != nil {
		return "", fmt.Errorf("invoiceService.ArchiveURL upload: %w", err)
	}
	return s.storage.GetPresignedURL(ctx, s.archive.Bucket, key, s.archive.PresignExpiry)
}

func archiveKey(id uuid.UUID) string {
	return fmt.Sprintf("invoices/%s/%s.pdf", time.Now().UTC().Format("2006/01"), id)
}
