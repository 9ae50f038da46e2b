package worker

import (
	"context"

	"github.com/vibe-gaming/waitlist/internal/config"
	emailProvider "github.com/vibe-gaming/waitlist/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

// EmailSender renders and delivers the waiting list emails.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, email string, verificationToken string) error
	SendWelcomeEmail(ctx context.Context, email string, position int) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
