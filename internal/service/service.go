package service

import (
	"context"
	"time"

	"github.com/vibe-gaming/waitlist/internal/domain"
	"github.com/vibe-gaming/waitlist/internal/repository"
	"github.com/vibe-gaming/waitlist/pkg/auth"
	"github.com/vibe-gaming/waitlist/pkg/hash"
)

type Services struct {
	Waitlist     Waitlist
	Verification Verification
	Admin        Admin
}

type Deps struct {
	Repos          *repository.Repositories
	Notifier       Notifier
	TokenManager   auth.TokenManager
	SecretComparer hash.SecretComparer
}

func NewServices(deps Deps) *Services {
	return &Services{
		Waitlist:     newWaitlistService(deps.Repos.Registrations, deps.Notifier),
		Verification: newVerificationService(deps.Repos.Registrations, deps.Notifier),
		Admin:        newAdminService(deps.Repos.Registrations, deps.TokenManager, deps.SecretComparer),
	}
}

// Notifier delivers the waiting list emails. Its failures never change the
// outcome of a registration or verification: the services log and count
// them and carry on.
type Notifier interface {
	NotifyVerification(ctx context.Context, email string, verificationToken string) error
	NotifyWelcome(ctx context.Context, email string, position int) error
}

type Waitlist interface {
	Register(ctx context.Context, input RegisterInput) (*RegistrationResult, error)
	Lookup(ctx context.Context, email string) (*domain.RegistrationView, error)
	Total(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type Verification interface {
	Verify(ctx context.Context, token string) (*VerificationResult, error)
}

type Admin interface {
	Login(ctx context.Context, password string) (*AdminSession, error)
	Authorize(credential string) error
	ListUsers(ctx context.Context, credential string, input ListUsersInput) (*UsersPage, error)
	Stats(ctx context.Context, credential string) (*Stats, error)
}

type clock func() time.Time
