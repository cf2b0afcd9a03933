package testing

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisContainer represents a running Redis test container
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
}

// NewRedisContainer starts a Redis test container.
// The test is skipped in short mode or when no container runtime is reachable.
func NewRedisContainer(ctx context.Context, tb testing.TB) *RedisContainer {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis container in short mode")
	}
	skipIfNoProvider(tb)

	redisContainer, err := redis.Run(ctx, "redis:7-alpine")
	if err != nil {
		tb.Skipf("redis container unavailable: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			tb.Logf("failed to terminate redis container: %v", err)
		}
	})

	url, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		tb.Fatalf("failed to get redis connection string: %v", err)
	}

	return &RedisContainer{
		Container: redisContainer,
		URL:       url,
	}
}
