package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// MockDuplicateService is a mock implementation of service.DuplicateService.
type MockDuplicateService struct {
	mock.Mock
}

func (m *MockDuplicateService) Check(ctx context.Context, targetPath, targetName, sourceDir string) (*domain.DuplicateReport, error) {
	args := m.Called(ctx, targetPath, targetName, sourceDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuplicateReport), args.Error(1)
}
