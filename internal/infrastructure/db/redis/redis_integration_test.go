//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: addr, Timeout: 10 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestLoginThrottle(t *testing.T) {
	client := startRedis(t)
	throttle := NewLoginThrottle(client, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := throttle.Allow(ctx, "ada")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, err := throttle.Allow(ctx, "ada")
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := client.TTL(ctx, "login:ada").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	other, err := throttle.Allow(ctx, "grace")
	require.NoError(t, err)
	assert.True(t, other)

	require.NoError(t, throttle.Reset(ctx, "ada"))
	ok, err = throttle.Allow(ctx, "ada")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDenylist(t *testing.T) {
	client := startRedis(t)
	denylist := NewDenylist(client)
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "01HZX")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "01HZX", time.Minute))
	revoked, err = denylist.IsRevoked(ctx, "01HZX")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "expired", 0))
	revoked, err = denylist.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}
