package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// MockDocumentReader is a mock implementation of port.DocumentReader.
type MockDocumentReader struct {
	mock.Mock
}

func (m *MockDocumentReader) Read(ctx context.Context, path string) ([]port.PageContent, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.PageContent), args.Error(1)
}

func (m *MockDocumentReader) PlainText(ctx context.Context, path string) (string, error) {
	args := m.Called(ctx, path)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentReader) Metadata(ctx context.Context, path string) (*port.DocumentInfo, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.DocumentInfo), args.Error(1)
}
