package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
	"billforge/internal/service"
	"billforge/internal/validator/invoice"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Compute(ctx context.Context, input service.ComputeInvoiceInput) (*domain.InvoiceRecord, []invoice.Diagnostic, error) {
	args := m.Called(ctx, input)
	var rec *domain.InvoiceRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.InvoiceRecord)
	}
	var diags []invoice.Diagnostic
	if args.Get(1) != nil {
		diags = args.Get(1).([]invoice.Diagnostic)
	}
	return rec, diags, args.Error(2)
}

func (m *MockInvoiceService) Create(ctx context.Context, input service.ComputeInvoiceInput) (*domain.Invoice, []invoice.Diagnostic, error) {
	args := m.Called(ctx, input)
	var inv *domain.Invoice
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Invoice)
	}
	var diags []invoice.Diagnostic
	if args.Get(1) != nil {
		diags = args.Get(1).([]invoice.Diagnostic)
	}
	return inv, diags, args.Error(2)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceService) Render(ctx context.Context, id uuid.UUID, templateID domain.TemplateID) (map[domain.PageLabel]string, error) {
	args := m.Called(ctx, id, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.PageLabel]string), args.Error(1)
}

func (m *MockInvoiceService) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockInvoiceService) ExportRegisterCSV(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockInvoiceService) Email(ctx context.Context, id uuid.UUID, input service.EmailInvoiceInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockInvoiceService) ArchiveURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
