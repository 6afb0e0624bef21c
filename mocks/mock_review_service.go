package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// MockReviewService is a mock implementation of service.ReviewService.
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Train(ctx context.Context, paths []string) (*service.BaselineSummary, error) {
	args := m.Called(ctx, paths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BaselineSummary), args.Error(1)
}

func (m *MockReviewService) Score(ctx context.Context, path, fileName string) (*domain.ScoreResult, error) {
	args := m.Called(ctx, path, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoreResult), args.Error(1)
}

func (m *MockReviewService) Annotate(ctx context.Context, path, fileName string, w io.Writer) (*domain.ScoreResult, error) {
	args := m.Called(ctx, path, fileName, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoreResult), args.Error(1)
}

func (m *MockReviewService) Baseline() (*service.BaselineSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BaselineSummary), args.Error(1)
}

func (m *MockReviewService) Reset() {
	m.Called()
}
