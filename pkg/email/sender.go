package email

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var addressValidator = validator.New()

type SendEmailInput struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type Sender interface {
	Send(input SendEmailInput) error
}

func (e *SendEmailInput) Validate() error {
	if e.To == "" {
		return errors.New("empty to")
	}

	if e.Subject == "" || (e.HTMLBody == "" && e.TextBody == "") {
		return errors.New("empty subject/body")
	}

	if !IsEmailValid(e.To) {
		return errors.New("invalid to email")
	}

	return nil
}

func IsEmailValid(address string) bool {
	return addressValidator.Var(address, "required,email") == nil
}
