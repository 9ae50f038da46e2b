package worker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/waitlist/internal/config"
	emailProvider "github.com/vibe-gaming/waitlist/pkg/email"
	mock_email "github.com/vibe-gaming/waitlist/pkg/email/mock"
)

func TestSendVerificationEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.MatchedBy(func(in emailProvider.SendEmailInput) bool {
		return in.To == "a@x.com" &&
			strings.Contains(in.TextBody, "https://waitlist.example/verify?token=tok-1")
	})).Return(nil).Once()

	s := newEmailSender(sender, config.EmailConfig{Enabled: true, BaseURL: "https://waitlist.example/"})

	require.NoError(t, s.SendVerificationEmail(context.Background(), "a@x.com", "tok-1"))
	sender.AssertExpectations(t)
}

func TestSendWelcomeEmail(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.MatchedBy(func(in emailProvider.SendEmailInput) bool {
		return strings.Contains(in.TextBody, "#7")
	})).Return(nil).Once()

	s := newEmailSender(sender, config.EmailConfig{Enabled: true})

	require.NoError(t, s.SendWelcomeEmail(context.Background(), "a@x.com", 7))
	sender.AssertExpectations(t)
}

func TestSendEmailDisabled(t *testing.T) {
	sender := new(mock_email.EmailSender)
	s := newEmailSender(sender, config.EmailConfig{Enabled: false})

	require.NoError(t, s.SendWelcomeEmail(context.Background(), "a@x.com", 1))
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSendEmailProviderFailure(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.Anything).Return(errors.New("smtp down"))

	s := newEmailSender(sender, config.EmailConfig{Enabled: true})

	err := s.SendWelcomeEmail(context.Background(), "a@x.com", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
}
