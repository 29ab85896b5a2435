package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vosul/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Metrics(ctx context.Context, q domain.ReportQuery) (*domain.Metrics, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metrics), args.Error(1)
}

func (m *MockReportService) ResponsibleTable(ctx context.Context, q domain.ReportQuery) ([]domain.ResponsiblePartyRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResponsiblePartyRow), args.Error(1)
}

func (m *MockReportService) ProvinceTable(ctx context.Context, q domain.ReportQuery) ([]domain.ProvinceRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProvinceRow), args.Error(1)
}

func (m *MockReportService) Dashboard(ctx context.Context, q domain.ReportQuery) (*domain.Dashboard, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockReportService) Table(ctx context.Context, kind domain.TableKind, q domain.ReportQuery) (domain.Table, error) {
	args := m.Called(ctx, kind, q)
	return args.Get(0).(domain.Table), args.Error(1)
}

func (m *MockReportService) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockReportService) FilterByDate(ctx context.Context, date string, column domain.DateColumn) ([]domain.Record, error) {
	args := m.Called(ctx, date, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockReportService) ExportDataset(ctx context.Context, filename string) (string, error) {
	args := m.Called(ctx, filename)
	return args.String(0), args.Error(1)
}
