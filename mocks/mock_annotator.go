package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// MockAnnotator is a mock implementation of port.Annotator.
type MockAnnotator struct {
	mock.Mock
}

func (m *MockAnnotator) Annotate(ctx context.Context, srcPath string, spans []domain.ContentSpan, w io.Writer) error {
	args := m.Called(ctx, srcPath, spans, w)
	return args.Error(0)
}
