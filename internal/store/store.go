// Package store persists named values in a key-value backend. Every
// collection and preference lives under its own key, serialized by the
// caller.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get and Delete when the requested key does not exist.
var ErrNotFound = errors.New("key not found")

// KV defines the interface for key-value persistence.
// Implementations are safe for concurrent use.
type KV interface {
	// Get returns the value stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
