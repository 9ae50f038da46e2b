package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vibe-gaming/waitlist/internal/domain"
	"github.com/vibe-gaming/waitlist/internal/repository"
	"github.com/vibe-gaming/waitlist/pkg/logger"
)

type verificationService struct {
	registrations repository.Registrations
	notifier      Notifier
	now           clock
}

func newVerificationService(registrations repository.Registrations, notifier Notifier) *verificationService {
	return &verificationService{
		registrations: registrations,
		notifier:      notifier,
		now:           time.Now,
	}
}

type VerificationResult struct {
	Position int `json:"position"`
}

// Verify consumes a verification token. Unknown and already used tokens
// are reported the same way since a used token no longer exists.
func (s *verificationService) Verify(ctx context.Context, token string) (*VerificationResult, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	email, err := s.registrations.GetEmailByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get verification token failed: %w", err)
	}

	registration, err := s.registrations.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Error("verification token points to missing registration", zap.String("email", email))
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration failed: %w", err)
	}

	registration.MarkVerified(s.now().UTC())

	if err := s.registrations.Save(ctx, registration); err != nil {
		return nil, fmt.Errorf("save verified registration failed: %w", err)
	}

	if err := s.registrations.DeleteVerificationToken(ctx, token); err != nil {
		return nil, fmt.Errorf("delete verification token failed: %w", err)
	}

	verificationsTotal.Inc()
	logger.Info("registration verified", zap.String("email", email), zap.Int("position", registration.Position))

	if err := s.notifier.NotifyWelcome(ctx, registration.Email, registration.Position); err != nil {
		notificationFailuresTotal.WithLabelValues("welcome").Inc()
		logger.Error("welcome email failed", zap.String("email", registration.Email), zap.Error(err))
	}

	return &VerificationResult{Position: registration.Position}, nil
}
