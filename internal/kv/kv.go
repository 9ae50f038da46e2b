// Package kv provides the string key-value stores the waiting list is
// persisted in. Backends offer single-key atomicity only; there are no
// multi-key transactions.
package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("kv: key not found")
	ErrKeyExists = errors.New("kv: key already exists")
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	// PutIfAbsent stores value only when key is unset and returns
	// ErrKeyExists otherwise. The check and the write are atomic.
	PutIfAbsent(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// List returns every key starting with prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}
