package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// MockMetadataService is a mock implementation of service.MetadataService.
type MockMetadataService struct {
	mock.Mock
}

func (m *MockMetadataService) AnalyzeFiles(ctx context.Context, files []service.NamedFile) []domain.MetadataReport {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MetadataReport)
}
