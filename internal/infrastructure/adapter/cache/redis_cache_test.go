package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
)

type cachedView struct {
	Symbol  string `json:"symbol"`
	Balance int64  `json:"balance"`
}

func newTestRedisCache(t *testing.T) *RedisCache {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping Redis test")
	}

	c, err := NewRedisCache(context.Background(), RedisOptions{
		Addr:      addr,
		KeyPrefix: "test:" + uuid.NewString() + ":",
	}, logger.NewNoopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	var got cachedView
	found, err := c.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "view", cachedView{Symbol: "BHC", Balance: 1050}, time.Minute))

	found, err = c.Get(ctx, "view", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedView{Symbol: "BHC", Balance: 1050}, got)

	require.NoError(t, c.Delete(ctx, "view", "missing"))
	found, err = c.Get(ctx, "view", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Delete(ctx, "k"))
}
