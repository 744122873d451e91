package cache

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// NoopCache always misses. Used when caching is disabled.
type NoopCache struct{}

var _ coreport.Cache = NoopCache{}

// NewNoopCache creates a cache that stores nothing
func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NoopCache) Delete(context.Context, ...string) error               { return nil }
