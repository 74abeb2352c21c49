package ports

import (
	"context"
	"time"
)

// LoginThrottle limits login attempts per identifier.
type LoginThrottle interface {
	// Allow records an attempt for key and reports whether it is within budget.
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// TokenDenylist remembers access tokens revoked before their expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
