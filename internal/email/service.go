package email

import (
	"context"
	"fmt"

	"call-server/internal/observability"
)

// MailClient sends a single email and returns the provider message id.
type MailClient interface {
	SendEmail(ctx context.Context, from string, to []string, subject, text string) (string, error)
}

// Service delivers call summaries to callees.
type Service struct {
	mailClient    MailClient
	defaultSender string
	operatorEmail string
	logger        *observability.Logger
}

func NewService(mailClient MailClient, defaultSender, operatorEmail string, logger *observability.Logger) Service {
	return Service{
		mailClient:    mailClient,
		defaultSender: defaultSender,
		operatorEmail: operatorEmail,
		logger:        logger,
	}
}

// SendCallSummary emails the summary of a finished call to the callee, with a
// copy to the operator mailbox when one is configured.
func (s Service) SendCallSummary(ctx context.Context, summary, fromPhone, toEmail string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_from", Value: fromPhone})

	recipients := []string{toEmail}
	if s.operatorEmail != "" && s.operatorEmail != toEmail {
		recipients = append(recipients, s.operatorEmail)
	}

	subject := "Call Summary from " + fromPhone
	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, recipients, subject, summary); err != nil {
		s.logger.Error(ctx, "failed to send call summary email", err)
		return fmt.Errorf("failed to send call summary: %w", err)
	}
	s.logger.Info(ctx, "call summary email sent")
	return nil
}
