package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAlertSender is a mock implementation of port.AlertSender.
type MockAlertSender struct {
	mock.Mock
}

func (m *MockAlertSender) SendScoreAlert(ctx context.Context, toEmail, fileName string, anomalyPercent float64) error {
	args := m.Called(ctx, toEmail, fileName, anomalyPercent)
	return args.Error(0)
}
