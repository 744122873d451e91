package core

import (
	"context"
	"time"
)

// Cache is a best-effort read cache for derived views.
// A miss is reported as (false, nil); callers fall back to the source of truth.
type Cache interface {
	// Get decodes the cached value for key into dest
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes the given keys, ignoring ones that do not exist
	Delete(ctx context.Context, keys ...string) error
}
