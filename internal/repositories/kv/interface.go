package kv

import "context"

// Repository stores opaque values under string keys.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}
