package kv

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const retryInitialInterval = 50 * time.Millisecond

// RetryStore retries failed calls of the wrapped store with exponential
// backoff. ErrNotFound and ErrKeyExists are answers, not failures, and are
// returned immediately.
type RetryStore struct {
	next        Store
	attempts    uint64
	maxInterval time.Duration
}

func NewRetryStore(next Store, attempts uint64, maxInterval time.Duration) *RetryStore {
	return &RetryStore{next: next, attempts: attempts, maxInterval: maxInterval}
}

func (s *RetryStore) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = s.maxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, s.attempts), ctx)
}

func permanent(err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyExists) {
		return backoff.Permanent(err)
	}
	return err
}

func (s *RetryStore) Get(ctx context.Context, key string) (string, error) {
	return backoff.RetryWithData(func() (string, error) {
		v, err := s.next.Get(ctx, key)
		return v, permanent(err)
	}, s.policy(ctx))
}

func (s *RetryStore) Put(ctx context.Context, key, value string) error {
	return backoff.Retry(func() error {
		return s.next.Put(ctx, key, value)
	}, s.policy(ctx))
}

func (s *RetryStore) PutIfAbsent(ctx context.Context, key, value string) error {
	return backoff.Retry(func() error {
		return permanent(s.next.PutIfAbsent(ctx, key, value))
	}, s.policy(ctx))
}

func (s *RetryStore) Delete(ctx context.Context, key string) error {
	return backoff.Retry(func() error {
		return s.next.Delete(ctx, key)
	}, s.policy(ctx))
}

func (s *RetryStore) List(ctx context.Context, prefix string) ([]string, error) {
	return backoff.RetryWithData(func() ([]string, error) {
		return s.next.List(ctx, prefix)
	}, s.policy(ctx))
}

func (s *RetryStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}
