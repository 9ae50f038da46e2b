package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vibe-gaming/waitlist/internal/domain"
	"github.com/vibe-gaming/waitlist/internal/repository"
	"github.com/vibe-gaming/waitlist/pkg/auth"
	"github.com/vibe-gaming/waitlist/pkg/hash"
	"github.com/vibe-gaming/waitlist/pkg/logger"
)

const (
	adminSubject = "admin"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListOrder selects how the admin user list is paginated.
type ListOrder string

const (
	// OrderEmail pages over emails in lexical order and sorts each page by
	// position.
	OrderEmail ListOrder = "email"
	// OrderPosition pages over the whole list sorted by position.
	OrderPosition ListOrder = "position"
)

type adminService struct {
	registrations repository.Registrations
	tokenManager  auth.TokenManager
	secret        hash.SecretComparer
}

func newAdminService(registrations repository.Registrations, tokenManager auth.TokenManager, secret hash.SecretComparer) *adminService {
	return &adminService{
		registrations: registrations,
		tokenManager:  tokenManager,
		secret:        secret,
	}
}

type AdminSession struct {
	Token     string
	ExpiresIn time.Duration
}

type ListUsersInput struct {
	Page  int
	Limit int
	Order ListOrder
}

type UsersPage struct {
	Users      []domain.RegistrationView `json:"users"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"totalPages"`
}

type Stats struct {
	TotalUsers      int            `json:"totalUsers"`
	VerifiedUsers   int            `json:"verifiedUsers"`
	UnverifiedUsers int            `json:"unverifiedUsers"`
	NetworkStats    map[string]int `json:"networkStats"`
}

func (s *adminService) Login(_ context.Context, password string) (*AdminSession, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if !s.secret.Equal(password) {
		logger.Warn("admin login rejected")
		return nil, ErrUnauthorized
	}

	token, ttl, err := s.tokenManager.NewJWT(adminSubject)
	if err != nil {
		return nil, fmt.Errorf("issue admin session failed: %w", err)
	}

	return &AdminSession{Token: token, ExpiresIn: ttl}, nil
}

// Authorize accepts either the shared admin secret or a live session token.
func (s *adminService) Authorize(credential string) error {
	if credential == "" {
		return ErrUnauthorized
	}
	if s.secret.Equal(credential) {
		return nil
	}
	if sub, err := s.tokenManager.Parse(credential); err == nil && sub == adminSubject {
		return nil
	}
	return ErrUnauthorized
}

func (in *ListUsersInput) normalize() error {
	if in.Page == 0 {
		in.Page = DefaultPage
	}
	if in.Limit == 0 {
		in.Limit = DefaultLimit
	}
	if in.Order == "" {
		in.Order = OrderEmail
	}

	var fields []FieldError
	if in.Page < 1 {
		fields = append(fields, FieldError{Field: "page", Tag: "min", Param: "1"})
	}
	if in.Limit < 1 {
		fields = append(fields, FieldError{Field: "limit", Tag: "min", Param: "1"})
	}
	if in.Limit > MaxLimit {
		fields = append(fields, FieldError{Field: "limit", Tag: "max", Param: fmt.Sprint(MaxLimit)})
	}
	if in.Order != OrderEmail && in.Order != OrderPosition {
		fields = append(fields, FieldError{Field: "order", Tag: "oneof", Param: "email position"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, credential string, input ListUsersInput) (*UsersPage, error) {
	if err := s.Authorize(credential); err != nil {
		return nil, err
	}
	if err := input.normalize(); err != nil {
		return nil, err
	}

	emails, err := s.registrations.ListEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations failed: %w", err)
	}

	total := len(emails)
	start, end := pageWindow(total, input.Page, input.Limit)

	var users []domain.RegistrationView
	switch input.Order {
	case OrderPosition:
		all, err := s.load(ctx, emails)
		if err != nil {
			return nil, err
		}
		sortByPosition(all)
		if start > len(all) {
			start = len(all)
		}
		if end > len(all) {
			end = len(all)
		}
		users = all[start:end]
	default:
		users, err = s.load(ctx, emails[start:end])
		if err != nil {
			return nil, err
		}
		sortByPosition(users)
	}

	return &UsersPage{
		Users:      users,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: (total + input.Limit - 1) / input.Limit,
	}, nil
}

func (s *adminService) Stats(ctx context.Context, credential string) (*Stats, error) {
	if err := s.Authorize(credential); err != nil {
		return nil, err
	}

	emails, err := s.registrations.ListEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations failed: %w", err)
	}
	users, err := s.load(ctx, emails)
	if err != nil {
		return nil, err
	}

	stats := &Stats{NetworkStats: make(map[string]int)}
	for _, u := range users {
		stats.TotalUsers++
		if u.Verified {
			stats.VerifiedUsers++
		} else {
			stats.UnverifiedUsers++
		}
		stats.NetworkStats[u.Network]++
	}
	return stats, nil
}

// load fetches registrations in the given order. Keys that disappeared
// between listing and loading are skipped.
func (s *adminService) load(ctx context.Context, emails []string) ([]domain.RegistrationView, error) {
	users := make([]domain.RegistrationView, 0, len(emails))
	for _, email := range emails {
		registration, err := s.registrations.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.Warn("registration vanished during scan", zap.String("email", email))
				continue
			}
			return nil, fmt.Errorf("load registration failed: %w", err)
		}
		users = append(users, registration.View())
	}
	return users, nil
}

func pageWindow(total, page, limit int) (int, int) {
	if page-1 > total/limit {
		return total, total
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

func sortByPosition(users []domain.RegistrationView) {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Position < users[j].Position
	})
}
