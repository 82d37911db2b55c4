package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailNotifier delivers notifications through Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

func NewEmailNotifier(apiKey, from string, log *zap.Logger) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    log,
	}
}

func (n *EmailNotifier) Publish(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return errors.New("notification has no recipient")
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	n.log.Info("email sent", zap.String("id", sent.Id), zap.String("to", msg.To))
	return nil
}
