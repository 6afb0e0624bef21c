package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// MockScanRunRepo is a mock implementation of port.ScanRunRepository.
type MockScanRunRepo struct {
	mock.Mock
}

func (m *MockScanRunRepo) Create(ctx context.Context, run *domain.ScanRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockScanRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ScanRun, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ScanRun), args.Int(1), args.Error(2)
}

func (m *MockScanRunRepo) ListAll(ctx context.Context) ([]domain.ScanRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScanRun), args.Error(1)
}
