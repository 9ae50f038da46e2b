package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vibe-gaming/waitlist/internal/domain"
	"github.com/vibe-gaming/waitlist/internal/repository"
	"github.com/vibe-gaming/waitlist/pkg/logger"
	waitlistValidator "github.com/vibe-gaming/waitlist/pkg/validator"
)

type waitlistService struct {
	registrations repository.Registrations
	notifier      Notifier
	validate      *validator.Validate
	now           clock
}

func newWaitlistService(registrations repository.Registrations, notifier Notifier) *waitlistService {
	return &waitlistService{
		registrations: registrations,
		notifier:      notifier,
		validate:      waitlistValidator.New(),
		now:           time.Now,
	}
}

type RegisterInput struct {
	Email         string `json:"email" validate:"required,email"`
	WalletAddress string `json:"walletAddress" validate:"required,wallet"`
	Signature     string `json:"signature" validate:"required,signature"`
	Network       string `json:"network"`
}

type RegistrationResult struct {
	Position          int    `json:"position"`
	Email             string `json:"email"`
	WalletAddress     string `json:"walletAddress"`
	Verified          bool   `json:"verified"`
	NeedsVerification bool   `json:"needsVerification"`
}

func (s *waitlistService) validateInput(input RegisterInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	out := &ValidationError{Fields: make([]FieldError, len(verr))}
	for i, ferr := range verr {
		out.Fields[i] = FieldError{Field: ferr.Field(), Tag: ferr.Tag(), Param: ferr.Param()}
	}
	return out
}

func (s *waitlistService) Register(ctx context.Context, input RegisterInput) (*RegistrationResult, error) {
	input.Network = strings.TrimSpace(input.Network)
	if input.Network == "" {
		input.Network = domain.DefaultNetwork
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.registrations.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email failed: %w", err)
	}

	if _, err := s.registrations.GetByWallet(ctx, input.WalletAddress); err == nil {
		return nil, ErrWalletAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check wallet failed: %w", err)
	}

	token, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate verification token failed: %w", err)
	}

	position, err := s.registrations.ClaimPosition(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("assign position failed: %w", err)
	}

	registration := &domain.Registration{
		Email:             input.Email,
		WalletAddress:     input.WalletAddress,
		Signature:         input.Signature,
		Network:           input.Network,
		JoinedAt:          s.now().UTC(),
		Position:          position,
		Verified:          false,
		VerificationToken: token.String(),
	}

	if err := s.registrations.Save(ctx, registration); err != nil {
		return nil, fmt.Errorf("save registration failed: %w", err)
	}

	if err := s.registrations.CreateVerificationToken(ctx, registration.VerificationToken, registration.Email); err != nil {
		return nil, fmt.Errorf("save verification token failed: %w", err)
	}

	registrationsTotal.Inc()
	logger.Info("registration created",
		zap.String("email", registration.Email),
		zap.Int("position", registration.Position),
		zap.String("network", registration.Network),
	)

	if err := s.notifier.NotifyVerification(ctx, registration.Email, registration.VerificationToken); err != nil {
		notificationFailuresTotal.WithLabelValues("verification").Inc()
		logger.Error("verification email failed", zap.String("email", registration.Email), zap.Error(err))
	}

	return &RegistrationResult{
		Position:          registration.Position,
		Email:             registration.Email,
		WalletAddress:     registration.WalletAddress,
		Verified:          false,
		NeedsVerification: true,
	}, nil
}

// Lookup only resolves primary registration keys; index and wallet keys
// are reported as missing.
func (s *waitlistService) Lookup(ctx context.Context, email string) (*domain.RegistrationView, error) {
	if !repository.IsUserKey(email) {
		return nil, ErrRegistrationNotFound
	}

	registration, err := s.registrations.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("get registration failed: %w", err)
	}

	view := registration.View()
	return &view, nil
}

func (s *waitlistService) Total(ctx context.Context) (int, error) {
	return s.registrations.CountPositions(ctx)
}

func (s *waitlistService) Ping(ctx context.Context) error {
	return s.registrations.Ping(ctx)
}
