package noop

import (
	"context"
	"log"

	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op AlertSender that logs alerts to stdout.
func NewNoopSender() port.AlertSender {
	return &noopSender{}
}

func (s *noopSender) SendScoreAlert(_ context.Context, toEmail, fileName string, anomalyPercent float64) error {
	log.Printf("[NOOP ALERT] would notify %s: %s scored %.2f%%", toEmail, fileName, anomalyPercent)
	return nil
}
