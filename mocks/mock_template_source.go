package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTemplateSource is a mock implementation of port.TemplateSource.
type MockTemplateSource struct {
	mock.Mock
}

func (m *MockTemplateSource) Load(ctx context.Context, file string) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
