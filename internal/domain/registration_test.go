package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationMarkVerified(t *testing.T) {
	joined := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sets verified state and drops token", func(t *testing.T) {
		r := Registration{JoinedAt: joined, VerificationToken: "tok"}
		now := joined.Add(time.Hour)

		r.MarkVerified(now)

		assert.True(t, r.Verified)
		require.NotNil(t, r.VerifiedAt)
		assert.Equal(t, now, *r.VerifiedAt)
		assert.Empty(t, r.VerificationToken)
	})

	t.Run("verifiedAt is never before joinedAt", func(t *testing.T) {
		r := Registration{JoinedAt: joined}
		r.MarkVerified(joined.Add(-time.Minute))

		require.NotNil(t, r.VerifiedAt)
		assert.False(t, r.VerifiedAt.Before(r.JoinedAt))
	})
}

func TestRegistrationView(t *testing.T) {
	r := Registration{Email: "a@x.com", VerificationToken: "secret", Position: 3}

	v := r.View()

	assert.Equal(t, "a@x.com", v.Email)
	assert.Equal(t, 3, v.Position)
	assert.Equal(t, DefaultNetwork, v.Network)
	assert.Nil(t, v.VerifiedAt)
}
