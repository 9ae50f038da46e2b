package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/waitlist/internal/config"
	"github.com/vibe-gaming/waitlist/internal/kv"
	"github.com/vibe-gaming/waitlist/internal/repository"
	"github.com/vibe-gaming/waitlist/pkg/auth"
	"github.com/vibe-gaming/waitlist/pkg/hash"
)

const adminPassword = "correct horse battery staple"

var testSignature = "0x" + strings.Repeat("ab", 65)

func walletFor(i int) string {
	return fmt.Sprintf("0x%040x", i)
}

func registerInput(i int) RegisterInput {
	return RegisterInput{
		Email:         fmt.Sprintf("user%02d@x.com", i),
		WalletAddress: walletFor(i),
		Signature:     testSignature,
		Network:       "sepolia",
	}
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) NotifyVerification(ctx context.Context, email string, token string) error {
	return m.Called(email, token).Error(0)
}

func (m *notifierMock) NotifyWelcome(ctx context.Context, email string, position int) error {
	return m.Called(email, position).Error(0)
}

// silentNotifier accepts every notification.
func silentNotifier() *notifierMock {
	m := new(notifierMock)
	m.On("NotifyVerification", mock.Anything, mock.Anything).Return(nil)
	m.On("NotifyWelcome", mock.Anything, mock.Anything).Return(nil)
	return m
}

type fixture struct {
	store        *kv.MemoryStore
	repos        *repository.Repositories
	waitlist     *waitlistService
	verification *verificationService
	admin        *adminService
	tokens       *auth.Manager
}

func newFixture(t *testing.T, notifier Notifier) *fixture {
	t.Helper()

	store := kv.NewMemoryStore()
	repos := repository.NewRepositories(store)
	tokens, err := auth.NewManager(config.JWTConfig{SigningKey: "test-key", SessionTTL: time.Minute})
	require.NoError(t, err)

	return &fixture{
		store:        store,
		repos:        repos,
		waitlist:     newWaitlistService(repos.Registrations, notifier),
		verification: newVerificationService(repos.Registrations, notifier),
		admin:        newAdminService(repos.Registrations, tokens, hash.NewSHA256Comparer(adminPassword)),
		tokens:       tokens,
	}
}

func (f *fixture) register(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := f.waitlist.Register(context.Background(), registerInput(i))
		require.NoError(t, err)
	}
}

func (f *fixture) tokenOf(t *testing.T, email string) string {
	t.Helper()
	r, err := f.repos.Registrations.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	return r.VerificationToken
}
