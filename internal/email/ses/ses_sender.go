package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed AlertSender.
func NewSESSender(region, fromAddress, fromName string) (port.AlertSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendScoreAlert(ctx context.Context, toEmail, fileName string, anomalyPercent float64) error {
	subject := fmt.Sprintf("High anomaly score: %s (%.2f%%)", fileName, anomalyPercent)
	htmlBody := fmt.Sprintf(
		"<p>The document <strong>%s</strong> scored <strong>%.2f%%</strong> against the trained baseline.</p>"+
			"<p>Its rendering signatures include combinations never seen in the trusted set. "+
			"Review the suspicious spans before accepting this document.</p>",
		fileName, anomalyPercent)
	textBody := fmt.Sprintf(
		"The document %s scored %.2f%% against the trained baseline.\n\n"+
			"Its rendering signatures include combinations never seen in the trusted set. "+
			"Review the suspicious spans before accepting this document.\n",
		fileName, anomalyPercent)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
