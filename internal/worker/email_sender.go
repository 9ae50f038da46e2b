package worker

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/vibe-gaming/waitlist/internal/config"
	emailProvider "github.com/vibe-gaming/waitlist/pkg/email"
	"github.com/vibe-gaming/waitlist/pkg/logger"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

func (s *emailSender) verificationLink(token string) string {
	return strings.TrimRight(s.config.BaseURL, "/") + "/verify?token=" + url.QueryEscape(token)
}

func (s *emailSender) SendVerificationEmail(ctx context.Context, email string, verificationToken string) error {
	data := emailProvider.TemplateData{
		Email:            email,
		VerificationLink: s.verificationLink(verificationToken),
	}
	return s.send(ctx, emailProvider.TemplateVerification, email, data)
}

func (s *emailSender) SendWelcomeEmail(ctx context.Context, email string, position int) error {
	data := emailProvider.TemplateData{
		Email:    email,
		Position: position,
	}
	return s.send(ctx, emailProvider.TemplateWelcome, email, data)
}

func (s *emailSender) send(_ context.Context, template string, to string, data emailProvider.TemplateData) error {
	if !s.config.Enabled {
		logger.Debug("email disabled, skipping", zap.String("template", template), zap.String("to", to))
		return nil
	}

	input, err := emailProvider.Render(template, to, data)
	if err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(input); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	logger.Info("email sent", zap.String("template", template), zap.String("to", to))
	return nil
}
