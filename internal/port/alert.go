package port

import "context"

// AlertSender notifies reviewers when a scored document crosses the
// configured anomaly threshold.
type AlertSender interface {
	SendScoreAlert(ctx context.Context, toEmail, fileName string, anomalyPercent float64) error
}
