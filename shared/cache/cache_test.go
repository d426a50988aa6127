package cache_test

import (
	"context"
	"testing"
	"time"

	otelMocks "hotelsphere/infras/otel/mocks"
	"hotelsphere/shared/cache"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bill struct {
	BookingID string  `json:"bookingId"`
	Total     float64 `json:"total"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	return cache.NewRedisCache(client, otelMocks.NewOtel()), server
}

func TestStoreAndLoad(t *testing.T) {
	redisCache, server := newCache(t)
	ctx := context.Background()

	var got bill

	found, err := redisCache.Load(ctx, "bill:b-1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, redisCache.Store(ctx, "bill:b-1", bill{BookingID: "b-1", Total: 280000}, time.Minute))
	assert.Equal(t, time.Minute, server.TTL("bill:b-1"))

	found, err = redisCache.Load(ctx, "bill:b-1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, bill{BookingID: "b-1", Total: 280000}, got)
}

func TestLoadMalformedValue(t *testing.T) {
	redisCache, server := newCache(t)

	require.NoError(t, server.Set("bill:b-1", "not json"))

	var got bill

	found, err := redisCache.Load(context.Background(), "bill:b-1", &got)
	require.Error(t, err)
	assert.False(t, found)
}

func TestHit(t *testing.T) {
	redisCache, server := newCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := redisCache.Hit(ctx, "limiter:desk", 30*time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	assert.Equal(t, 30*time.Second, server.TTL("limiter:desk"))

	server.FastForward(31 * time.Second)

	count, err := redisCache.Hit(ctx, "limiter:desk", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteAndPurge(t *testing.T) {
	redisCache, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, server.Set("bill:b-1", "{}"))
	require.NoError(t, server.Set("bill:b-2", "{}"))
	require.NoError(t, server.Set("limiter:desk", "1"))

	require.NoError(t, redisCache.Delete(ctx, "bill:b-1"))
	assert.False(t, server.Exists("bill:b-1"))

	require.NoError(t, redisCache.Purge(ctx, "bill:*"))
	assert.False(t, server.Exists("bill:b-2"))
	assert.True(t, server.Exists("limiter:desk"))

	require.NoError(t, redisCache.Purge(ctx, "nothing:*"))
}
