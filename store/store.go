// Package store is the key-value persistence adapter. Each collection is kept
// as one serialized value under its own key.
package store

import "context"

// Store maps string keys to serialized values.
type Store interface {
	// Get returns the value under key; ok is false when nothing was stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
	Close() error
}
