package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already registered")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	ErrEmailAlreadyRegistered  = fmt.Errorf("email %w", ErrConflict)
	ErrWalletAlreadyRegistered = fmt.Errorf("wallet address %w", ErrConflict)
	ErrRegistrationNotFound    = fmt.Errorf("registration %w", ErrNotFound)
	ErrTokenNotFound           = fmt.Errorf("verification token %w", ErrNotFound)
	ErrTokenRequired           = fmt.Errorf("%w: verification token is required", ErrValidation)
	ErrPasswordRequired        = fmt.Errorf("%w: password is required", ErrValidation)
)

type FieldError struct {
	Field string
	Tag   string
	Param string
}

// ValidationError lists the offending input fields. It matches ErrValidation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Tag
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
