package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vibe-gaming/waitlist/internal/kv"
)

type VerificationSuite struct {
	suite.Suite

	notifier *notifierMock
	f        *fixture
	email    string
	token    string
}

func TestVerificationSuite(t *testing.T) {
	suite.Run(t, new(VerificationSuite))
}

func (s *VerificationSuite) SetupTest() {
	s.notifier = silentNotifier()
	s.f = newFixture(s.T(), s.notifier)
	s.f.register(s.T(), 3)

	s.email = registerInput(2).Email
	s.token = s.f.tokenOf(s.T(), s.email)
	s.Require().NotEmpty(s.token)
}

func (s *VerificationSuite) TestVerifyMarksBothCopies() {
	ctx := context.Background()

	res, err := s.f.verification.Verify(ctx, s.token)
	s.Require().NoError(err)
	s.Equal(2, res.Position)

	byEmail, err := s.f.repos.Registrations.GetByEmail(ctx, s.email)
	s.Require().NoError(err)
	byWallet, err := s.f.repos.Registrations.GetByWallet(ctx, walletFor(2))
	s.Require().NoError(err)

	for _, r := range []bool{byEmail.Verified, byWallet.Verified} {
		s.True(r)
	}
	s.Empty(byEmail.VerificationToken)
	s.Empty(byWallet.VerificationToken)
	s.Require().NotNil(byEmail.VerifiedAt)
	s.False(byEmail.VerifiedAt.Before(byEmail.JoinedAt))

	_, err = s.f.store.Get(ctx, "verify:"+s.token)
	s.ErrorIs(err, kv.ErrNotFound)

	s.notifier.AssertCalled(s.T(), "NotifyWelcome", s.email, 2)
}

func (s *VerificationSuite) TestVerifyTwice() {
	ctx := context.Background()

	_, err := s.f.verification.Verify(ctx, s.token)
	s.Require().NoError(err)

	_, err = s.f.verification.Verify(ctx, s.token)
	s.ErrorIs(err, ErrTokenNotFound)
	s.ErrorIs(err, ErrNotFound)
}

func (s *VerificationSuite) TestVerifyUnknownToken() {
	_, err := s.f.verification.Verify(context.Background(), "00000000-0000-4000-8000-000000000000")
	s.ErrorIs(err, ErrTokenNotFound)
}

func (s *VerificationSuite) TestVerifyEmptyToken() {
	_, err := s.f.verification.Verify(context.Background(), "")
	s.ErrorIs(err, ErrValidation)
}

func (s *VerificationSuite) TestVerifyDanglingToken() {
	ctx := context.Background()
	s.Require().NoError(s.f.store.Put(ctx, "verify:dangling", "ghost@x.com"))

	_, err := s.f.verification.Verify(ctx, "dangling")
	s.ErrorIs(err, ErrRegistrationNotFound)
}

func (s *VerificationSuite) TestVerifyClampsClockSkew() {
	ctx := context.Background()
	s.f.verification.now = func() time.Time { return time.Unix(0, 0) }

	_, err := s.f.verification.Verify(ctx, s.token)
	s.Require().NoError(err)

	r, err := s.f.repos.Registrations.GetByEmail(ctx, s.email)
	s.Require().NoError(err)
	s.Require().NotNil(r.VerifiedAt)
	s.True(r.VerifiedAt.Equal(r.JoinedAt))
}

func (s *VerificationSuite) TestVerifyLeavesOthersUntouched() {
	ctx := context.Background()

	_, err := s.f.verification.Verify(ctx, s.token)
	s.Require().NoError(err)

	for _, i := range []int{1, 3} {
		r, err := s.f.repos.Registrations.GetByEmail(ctx, registerInput(i).Email)
		s.Require().NoError(err)
		s.False(r.Verified)
		s.NotEmpty(r.VerificationToken)
	}
}

func TestVerifySurvivesNotifierFailure(t *testing.T) {
	notifier := new(notifierMock)
	notifier.On("NotifyVerification", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyWelcome", mock.Anything, mock.Anything).Return(errors.New("queue unavailable"))
	f := newFixture(t, notifier)
	f.register(t, 1)

	res, err := f.verification.Verify(context.Background(), f.tokenOf(t, registerInput(1).Email))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Position)
	notifier.AssertNumberOfCalls(t, "NotifyWelcome", 1)
}
