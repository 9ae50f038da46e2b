package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vibe-gaming/waitlist/internal/domain"
	"github.com/vibe-gaming/waitlist/internal/kv"
)

// maxPositionAttempts bounds the claim loop when many registrations race
// for the next free position.
const maxPositionAttempts = 64

var ErrPositionsExhausted = errors.New("no free position after max attempts")

type registrationRepository struct {
	store kv.Store
}

func newRegistrationRepository(store kv.Store) *registrationRepository {
	return &registrationRepository{
		store: store,
	}
}

func (r *registrationRepository) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	const op = "repository.registration.GetByEmail"

	registration, err := r.load(ctx, emailKey(email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return registration, nil
}

func (r *registrationRepository) GetByWallet(ctx context.Context, address string) (*domain.Registration, error) {
	const op = "repository.registration.GetByWallet"

	registration, err := r.load(ctx, walletKey(address))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return registration, nil
}

func (r *registrationRepository) load(ctx context.Context, key string) (*domain.Registration, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %q failed: %w", key, err)
	}

	var registration domain.Registration
	if err := json.Unmarshal([]byte(raw), &registration); err != nil {
		return nil, fmt.Errorf("decode %q failed: %w", key, err)
	}
	return &registration, nil
}

// Save writes the wallet copy first and the email copy last, so a record
// is visible under its primary identity only once both copies exist.
func (r *registrationRepository) Save(ctx context.Context, registration *domain.Registration) error {
	const op = "repository.registration.Save"

	raw, err := json.Marshal(registration)
	if err != nil {
		return fmt.Errorf("%s: encode registration failed: %w", op, err)
	}

	if err := r.store.Put(ctx, walletKey(registration.WalletAddress), string(raw)); err != nil {
		return fmt.Errorf("%s: put wallet copy failed: %w", op, err)
	}
	if err := r.store.Put(ctx, emailKey(registration.Email), string(raw)); err != nil {
		return fmt.Errorf("%s: put email copy failed: %w", op, err)
	}
	return nil
}

// ClaimPosition assigns the next free position to email. Positions are
// claimed with an atomic put-if-absent starting after the current count,
// so concurrent callers never share one and no gaps appear.
func (r *registrationRepository) ClaimPosition(ctx context.Context, email string) (int, error) {
	const op = "repository.registration.ClaimPosition"

	count, err := r.CountPositions(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for n := count + 1; n <= count+maxPositionAttempts; n++ {
		err := r.store.PutIfAbsent(ctx, positionKey(n), email)
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, kv.ErrKeyExists) {
			return 0, fmt.Errorf("%s: claim position %d failed: %w", op, n, err)
		}

		// A retried write may have landed on the first attempt.
		owner, err := r.store.Get(ctx, positionKey(n))
		if err != nil && !errors.Is(err, kv.ErrNotFound) {
			return 0, fmt.Errorf("%s: read position %d owner failed: %w", op, n, err)
		}
		if owner == email {
			return n, nil
		}
	}

	return 0, fmt.Errorf("%s: %w", op, ErrPositionsExhausted)
}

func (r *registrationRepository) CountPositions(ctx context.Context) (int, error) {
	keys, err := r.store.List(ctx, positionPrefix)
	if err != nil {
		return 0, fmt.Errorf("list positions failed: %w", err)
	}
	return len(keys), nil
}

func (r *registrationRepository) CreateVerificationToken(ctx context.Context, token string, email string) error {
	if err := r.store.Put(ctx, verifyKey(token), email); err != nil {
		return fmt.Errorf("repository.registration.CreateVerificationToken: %w", err)
	}
	return nil
}

func (r *registrationRepository) GetEmailByVerificationToken(ctx context.Context, token string) (string, error) {
	email, err := r.store.Get(ctx, verifyKey(token))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("repository.registration.GetEmailByVerificationToken: %w", err)
	}
	return email, nil
}

func (r *registrationRepository) DeleteVerificationToken(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, verifyKey(token)); err != nil {
		return fmt.Errorf("repository.registration.DeleteVerificationToken: %w", err)
	}
	return nil
}

func (r *registrationRepository) ListEmails(ctx context.Context) ([]string, error) {
	keys, err := r.store.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("repository.registration.ListEmails: %w", err)
	}

	emails := make([]string, 0, len(keys))
	for _, k := range keys {
		if IsUserKey(k) {
			emails = append(emails, k)
		}
	}
	return emails, nil
}

func (r *registrationRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
