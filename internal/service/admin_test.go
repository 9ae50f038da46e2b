package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
)

type AdminSuite struct {
	suite.Suite

	f *fixture
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) SetupTest() {
	s.f = newFixture(s.T(), silentNotifier())
}

func (s *AdminSuite) TestLogin() {
	ctx := context.Background()

	_, err := s.f.admin.Login(ctx, "")
	s.ErrorIs(err, ErrValidation)

	_, err = s.f.admin.Login(ctx, "wrong")
	s.ErrorIs(err, ErrUnauthorized)

	session, err := s.f.admin.Login(ctx, adminPassword)
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Positive(session.ExpiresIn)

	s.NoError(s.f.admin.Authorize(session.Token))
}

func (s *AdminSuite) TestAuthorize() {
	s.NoError(s.f.admin.Authorize(adminPassword))
	s.ErrorIs(s.f.admin.Authorize(""), ErrUnauthorized)
	s.ErrorIs(s.f.admin.Authorize("guess"), ErrUnauthorized)

	foreign, _, err := s.f.tokens.NewJWT("someone-else")
	s.Require().NoError(err)
	s.ErrorIs(s.f.admin.Authorize(foreign), ErrUnauthorized)
}

func (s *AdminSuite) TestListUsersRequiresCredential() {
	_, err := s.f.admin.ListUsers(context.Background(), "bad", ListUsersInput{})
	s.ErrorIs(err, ErrUnauthorized)

	_, err = s.f.admin.Stats(context.Background(), "")
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AdminSuite) TestListUsersPages() {
	ctx := context.Background()
	s.f.register(s.T(), 25)

	sizes := []int{10, 10, 5}
	seen := make(map[string]bool)
	for page, size := range sizes {
		res, err := s.f.admin.ListUsers(ctx, adminPassword, ListUsersInput{Page: page + 1})
		s.Require().NoError(err)
		s.Equal(25, res.Total)
		s.Equal(3, res.TotalPages)
		s.Equal(DefaultLimit, res.Limit)
		s.Len(res.Users, size)

		for i, u := range res.Users {
			s.False(seen[u.Email], u.Email)
			seen[u.Email] = true
			if i > 0 {
				s.Less(res.Users[i-1].Position, u.Position)
			}
		}
	}
	s.Len(seen, 25)

	res, err := s.f.admin.ListUsers(ctx, adminPassword, ListUsersInput{Page: 4})
	s.Require().NoError(err)
	s.Empty(res.Users)
	s.Equal(25, res.Total)
}

func (s *AdminSuite) TestListUsersByPosition() {
	ctx := context.Background()
	s.f.register(s.T(), 12)

	res, err := s.f.admin.ListUsers(ctx, adminPassword, ListUsersInput{Page: 2, Limit: 5, Order: OrderPosition})
	s.Require().NoError(err)
	s.Require().Len(res.Users, 5)
	for i, u := range res.Users {
		s.Equal(6+i, u.Position)
	}
}

func (s *AdminSuite) TestListUsersRejectsBadInput() {
	ctx := context.Background()

	for _, in := range []ListUsersInput{
		{Page: -1},
		{Limit: -5},
		{Limit: MaxLimit + 1},
		{Order: "joined"},
	} {
		_, err := s.f.admin.ListUsers(ctx, adminPassword, in)
		s.ErrorIs(err, ErrValidation, "%+v", in)
	}
}

func (s *AdminSuite) TestListUsersDefaults() {
	s.f.register(s.T(), 1)

	res, err := s.f.admin.ListUsers(context.Background(), adminPassword, ListUsersInput{})
	s.Require().NoError(err)
	s.Equal(DefaultPage, res.Page)
	s.Equal(DefaultLimit, res.Limit)
	s.Require().Len(res.Users, 1)
	s.Equal(registerInput(1).Email, res.Users[0].Email)
}

func (s *AdminSuite) TestStats() {
	ctx := context.Background()
	s.f.register(s.T(), 4)

	in := registerInput(5)
	in.Network = ""
	_, err := s.f.waitlist.Register(ctx, in)
	s.Require().NoError(err)

	_, err = s.f.verification.Verify(ctx, s.f.tokenOf(s.T(), registerInput(1).Email))
	s.Require().NoError(err)

	stats, err := s.f.admin.Stats(ctx, adminPassword)
	s.Require().NoError(err)
	s.Equal(&Stats{
		TotalUsers:      5,
		VerifiedUsers:   1,
		UnverifiedUsers: 4,
		NetworkStats:    map[string]int{"sepolia": 4, "unknown": 1},
	}, stats)
}

func TestStatsInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t, silentNotifier())
		ctx := context.Background()
		networks := []string{"", "mainnet", "sepolia", "base"}

		n := rapid.IntRange(0, 15).Draw(rt, "users")
		for i := 1; i <= n; i++ {
			in := registerInput(i)
			in.Network = rapid.SampledFrom(networks).Draw(rt, "network")
			_, err := f.waitlist.Register(ctx, in)
			require.NoError(rt, err)

			if rapid.Bool().Draw(rt, "verify") {
				_, err := f.verification.Verify(ctx, f.tokenOf(t, in.Email))
				require.NoError(rt, err)
			}
		}

		stats, err := f.admin.Stats(ctx, adminPassword)
		require.NoError(rt, err)

		sum := 0
		for _, c := range stats.NetworkStats {
			sum += c
		}
		assert.Equal(rt, n, stats.TotalUsers)
		assert.Equal(rt, stats.TotalUsers, stats.VerifiedUsers+stats.UnverifiedUsers)
		assert.Equal(rt, stats.TotalUsers, sum)

		total, err := f.waitlist.Total(ctx)
		require.NoError(rt, err)
		assert.Equal(rt, stats.TotalUsers, total)
	})
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		total, page, limit int
		start, end         int
	}{
		{25, 1, 10, 0, 10},
		{25, 3, 10, 20, 25},
		{25, 4, 10, 25, 25},
		{0, 1, 10, 0, 0},
		{5, 1 << 30, 10, 5, 5},
	}
	for _, tt := range tests {
		start, end := pageWindow(tt.total, tt.page, tt.limit)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}
