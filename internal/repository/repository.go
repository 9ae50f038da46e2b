package repository

import (
	"context"

	"github.com/vibe-gaming/waitlist/internal/domain"
	"github.com/vibe-gaming/waitlist/internal/kv"
)

type Repositories struct {
	Registrations Registrations
}

func NewRepositories(store kv.Store) *Repositories {
	return &Repositories{
		Registrations: newRegistrationRepository(store),
	}
}

type Registrations interface {
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	GetByWallet(ctx context.Context, address string) (*domain.Registration, error)
	// Save writes both copies of the registration.
	Save(ctx context.Context, registration *domain.Registration) error
	ClaimPosition(ctx context.Context, email string) (int, error)
	CountPositions(ctx context.Context) (int, error)
	CreateVerificationToken(ctx context.Context, token string, email string) error
	GetEmailByVerificationToken(ctx context.Context, token string) (string, error)
	DeleteVerificationToken(ctx context.Context, token string) error
	// ListEmails returns the keys of all primary registration copies in
	// lexical order.
	ListEmails(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
