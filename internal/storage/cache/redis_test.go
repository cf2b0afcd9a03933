package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgtesting "github.com/DjordjeVuckovic/video-hunter/pkg/testing"
)

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	container := pkgtesting.NewRedisContainer(ctx, t)

	opts, err := redis.ParseURL(container.URL)
	require.NoError(t, err)

	c, err := NewRedisCache(ctx, RedisConfig{Addr: opts.Addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.True(t, c.Healthy(ctx))

	_, ok, err := c.Get(ctx, "search:missing:10:1:basic")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "search:행궁:10:1:basic", []byte(`{"total_count":12}`), time.Second))

	v, ok, err := c.Get(ctx, "search:행궁:10:1:basic")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"total_count":12}`, string(v))

	ttl, err := c.client.TTL(ctx, "search:행궁:10:1:basic").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.Eventually(t, func() bool {
		_, ok, err := c.Get(ctx, "search:행궁:10:1:basic")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNewRedisCache_MissingAddr(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisConfig{})
	assert.Error(t, err)
}
