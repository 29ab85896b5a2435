package mocks

import (
	"github.com/stretchr/testify/mock"

	"vosul/internal/domain"
)

// MockDatasetProvider is a mock implementation of port.DatasetProvider.
type MockDatasetProvider struct {
	mock.Mock
}

func (m *MockDatasetProvider) Current() *domain.Dataset {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Dataset)
}
