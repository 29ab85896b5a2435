package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vosul/internal/domain"
)

// MockRecordSource is a mock implementation of port.RecordSource.
type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawRecord), args.Error(1)
}
