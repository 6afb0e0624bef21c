package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// MockCorpusService is a mock implementation of service.CorpusService.
type MockCorpusService struct {
	mock.Mock
}

func (m *MockCorpusService) Add(ctx context.Context, fileName string, body io.Reader, size int64) error {
	args := m.Called(ctx, fileName, body, size)
	return args.Error(0)
}

func (m *MockCorpusService) List(ctx context.Context) ([]port.ObjectInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.ObjectInfo), args.Error(1)
}

func (m *MockCorpusService) Remove(ctx context.Context, fileName string) error {
	args := m.Called(ctx, fileName)
	return args.Error(0)
}
