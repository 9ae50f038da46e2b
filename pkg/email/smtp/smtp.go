package smtp

import (
	"errors"
	"fmt"

	"github.com/go-gomail/gomail"

	"github.com/vibe-gaming/waitlist/pkg/email"
)

type SMTPSender struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPSender(from, user, pass, host string, port int) (*SMTPSender, error) {
	if from == "" {
		return nil, errors.New("empty from")
	}
	if host == "" {
		return nil, errors.New("empty smtp host")
	}

	return &SMTPSender{from: from, dialer: gomail.NewDialer(host, port, user, pass)}, nil
}

func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)
	if input.TextBody != "" {
		msg.SetBody("text/plain", input.TextBody)
		if input.HTMLBody != "" {
			msg.AddAlternative("text/html", input.HTMLBody)
		}
	} else {
		msg.SetBody("text/html", input.HTMLBody)
	}

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}

	return nil
}
