package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vosul/internal/domain"
)

// MockTableExporter is a mock implementation of port.TableExporter.
type MockTableExporter struct {
	mock.Mock
}

func (m *MockTableExporter) Export(ctx context.Context, filename string, table domain.Table) (string, error) {
	args := m.Called(ctx, filename, table)
	return args.String(0), args.Error(1)
}

func (m *MockTableExporter) ExportDataset(ctx context.Context, filename string, ds *domain.Dataset) (string, error) {
	args := m.Called(ctx, filename, ds)
	return args.String(0), args.Error(1)
}
