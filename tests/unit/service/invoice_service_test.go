package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billforge/internal/catalog"
	"billforge/internal/config"
	"billforge/internal/csvexport"
	"billforge/internal/domain"
	"billforge/internal/pdf"
	"billforge/internal/port"
	"billforge/internal/render"
	"billforge/internal/service"
	"billforge/mocks"
)

type invoiceFixture struct {
	repo      *mocks.MockInvoiceRepo
	templates *mocks.MockTemplateSource
	sender    *mocks.MockEmailSender
	storage   *mocks.MockObjectStorage
	svc       service.InvoiceService
}

func newInvoiceFixture(archive config.ArchiveConfig) *invoiceFixture {
	f := &invoiceFixture{
		repo:      new(mocks.MockInvoiceRepo),
		templates: new(mocks.MockTemplateSource),
		sender:    new(mocks.MockEmailSender),
		storage:   new(mocks.MockObjectStorage),
	}
	var storage port.ObjectStorage
	if archive.Enabled {
		storage = f.storage
	}
	f.svc = service.NewInvoiceService(
		f.repo,
		catalog.NewLookup(catalog.Default()),
		render.NewRegistry(),
		f.templates,
		pdf.NewRenderer(),
		f.sender,
		storage,
		archive,
	)
	return f
}

func validInput() service.ComputeInvoiceInput {
	return service.ComputeInvoiceInput{
		Company: domain.Party{
			Name: "Sri Lakshmi Wood Works", Address: "12 Timber Lane, Rajahmundry",
			GSTIN: "37ABCDE1234F1Z5", State: "Andhra Pradesh", StateCode: "37",
		},
		Receiver: domain.Party{
			Name: "Vijaya Timber Depot", Address: "Market Road, Vijayawada",
			GSTIN: "37FGHIJ5678K1Z2", State: "Andhra Pradesh", StateCode: "37",
			Email: "accounts@vijayatimber.in",
		},
		InvoiceNumber: "INV-042",
		InvoiceDate:   "15/01/2026",
		Items: []domain.LineItemInput{
			{Description: "Casuarina Poles", HSNCode: "4404", Quantity: 30, UOM: "Tons", Rate: 1400},
		},
	}
}

func storedInvoice(t *testing.T, id uuid.UUID) *domain.Invoice {
	t.Helper()

	f := newInvoiceFixture(config.ArchiveConfig{})
	rec, diags, err := f.svc.Compute(context.Background(), validInput())
	require.NoError(t, err)
	require.Empty(t, diags)

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	return &domain.Invoice{
		ID:            id,
		InvoiceNumber: rec.InvoiceNumber,
		InvoiceDate:   rec.InvoiceDate,
		ReceiverName:  rec.Receiver.Name,
		SaleType:      rec.SaleType,
		GrandTotal:    rec.Totals.GrandTotal,
		Record:        raw,
	}
}

func TestInvoiceService_Compute_DerivesEverything(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	rec, diags, err := f.svc.Compute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, domain.SaleTypeIntrastate, rec.SaleType)
	assert.Equal(t, 47040.0, rec.Totals.GrandTotal)
	assert.Equal(t, "Forty Seven Thousand Forty Rupees Only", rec.Totals.AmountInWords)
	// The consignee falls back to the receiver when not supplied.
	assert.Equal(t, rec.Receiver, rec.Consignee)
}

func TestInvoiceService_Compute_InterstateInput(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	input := validInput()
	input.Receiver.GSTIN = "29FGHIJ5678K1Z2"
	input.Receiver.State = "Karnataka"
	input.Receiver.StateCode = "29"

	rec, diags, err := f.svc.Compute(context.Background(), input)

	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, domain.SaleTypeInterstate, rec.SaleType)
	assert.Equal(t, 5040.0, rec.Totals.TotalIGST)
	assert.Equal(t, 0.0, rec.Totals.TotalCGST)
}

func TestInvoiceService_Compute_PinnedSaleTypeWarns(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	input := validInput()
	input.Receiver.GSTIN = "29FGHIJ5678K1Z2"
	input.Receiver.State = "Karnataka"
	input.Receiver.StateCode = "29"
	input.SaleType = domain.SaleTypeIntrastate

	rec, diags, err := f.svc.Compute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.SaleTypeIntrastate, rec.SaleType)
	assert.True(t, rec.SaleTypeOverridden)

	var found bool
	for _, d := range diags {
		if d.RuleKey == "xf.sale_type.state_codes" {
			found = true
			assert.Equal(t, domain.ValidationSeverityWarning, d.Severity)
			assert.Equal(t, string(domain.SaleTypeInterstate), d.Expected)
			assert.Contains(t, d.Message, "manual override in effect")
		}
	}
	assert.True(t, found, "expected a sale-type mismatch diagnostic")
}

func TestInvoiceService_Create_Success(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, diags, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "INV-042", inv.InvoiceNumber)
	assert.Equal(t, 47040.0, inv.GrandTotal)
	assert.NotEmpty(t, inv.Record)
	f.repo.AssertExpectations(t)
}

func TestInvoiceService_Create_BlockingDiagnostics(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	input := validInput()
	input.Company.GSTIN = "not-a-gstin"

	inv, diags, err := f.svc.Create(context.Background(), input)

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.NotEmpty(t, diags)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_DuplicateNumber(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(domain.ErrDuplicateInvoiceNumber)

	inv, _, err := f.svc.Create(context.Background(), validInput())

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
}

func TestInvoiceService_Render(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(storedInvoice(t, id), nil)
	f.templates.On("Load", mock.Anything, "standard.html").
		Return("{{PAGE_TYPE}}: {{INVOICE_NUMBER}} {{GRAND_TOTAL}}", nil)

	pages, err := f.svc.Render(context.Background(), id, domain.TemplateStandard)

	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "ORIGINAL: INV-042 47040.00", pages[domain.PageOriginal])
	assert.Equal(t, "DUPLICATE: INV-042 47040.00", pages[domain.PageDuplicate])
}

func TestInvoiceService_Render_UnknownTemplate(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(storedInvoice(t, id), nil)

	_, err := f.svc.Render(context.Background(), id, "fancy")

	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestInvoiceService_ExportPDF(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(storedInvoice(t, id), nil)

	data, filename, err := f.svc.ExportPDF(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "INV-042.pdf", filename)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestInvoiceService_ExportRegisterCSV(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	f.repo.On("List", mock.Anything, 0, 500).Return([]domain.Invoice{*storedInvoice(t, id)}, 1, nil)

	data, filename, err := f.svc.ExportRegisterCSV(context.Background())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), string(csvexport.BOM)))
	assert.Contains(t, string(data), "Invoice Number")
	assert.Contains(t, string(data), "INV-042")
	assert.Contains(t, filename, "invoice_register_")
}

func TestInvoiceService_Email_DefaultsToReceiver(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(storedInvoice(t, id), nil)
	f.templates.On("Load", mock.Anything, "standard.html").Return("{{INVOICE_NUMBER}}", nil)
	f.sender.On("SendInvoiceEmail", mock.Anything,
		"accounts@vijayatimber.in", "Vijaya Timber Depot", "INV-042", "INV-042").Return(nil)

	err := f.svc.Email(context.Background(), id, service.EmailInvoiceInput{})

	require.NoError(t, err)
	f.sender.AssertExpectations(t)
}

func TestInvoiceService_Email_NoRecipient(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	inv := storedInvoice(t, id)
	var rec domain.InvoiceRecord
	require.NoError(t, json.Unmarshal(inv.Record, &rec))
	rec.Receiver.Email = ""
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	inv.Record = raw

	f.repo.On("GetByID", mock.Anything, id).Return(inv, nil)

	err = f.svc.Email(context.Background(), id, service.EmailInvoiceInput{})
	assert.ErrorIs(t, err, domain.ErrNoRecipient)
}

func TestInvoiceService_ArchiveURL_Disabled(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	_, err := f.svc.ArchiveURL(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
}

func TestInvoiceService_ArchiveURL_UploadsAndPresigns(t *testing.T) {
	archive := config.ArchiveConfig{Enabled: true, Bucket: "billforge-invoices", PresignExpiry: 3600}
	f := newInvoiceFixture(archive)

	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(storedInvoice(t, id), nil)
	f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "billforge-invoices" &&
			strings.HasPrefix(in.Key, "invoices/") &&
			strings.HasSuffix(in.Key, id.String()+".pdf")
	})).Return(&port.UploadOutput{Location: "s3://billforge-invoices"}, nil)
	f.storage.On("GetPresignedURL", mock.Anything, "billforge-invoices", mock.AnythingOfType("string"), int64(3600)).
		Return("https://example.com/presigned", nil)

	url, err := f.svc.ArchiveURL(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/presigned", url)
	f.storage.AssertExpectations(t)
}

func TestInvoiceService_GetByID_NotFound(t *testing.T) {
	f := newInvoiceFixture(config.ArchiveConfig{})

	id := uuid.New()
	f.repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := f.svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
