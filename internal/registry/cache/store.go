// Package cache keeps registry lookups for a bounded time so repeated
// lookups of the same person do not hit the registry again.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by a Store when a key is absent or expired.
var ErrNotFound = errors.New("cache entry not found")

// Store holds encoded entries with a time to live.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
