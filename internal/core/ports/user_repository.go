package ports

import (
	"context"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// UserRepository defines persistence operations for platform users.
type UserRepository interface {
	// Create inserts the user and returns it with its store-assigned ID.
	// A unique-index violation is reported as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUserNameOrEmail matches on whichever of the two identifiers is
	// non-empty. Returns domain.ErrUserNotFound when nothing matches.
	FindByUserNameOrEmail(ctx context.Context, userName, email string) (*domain.User, error)
	// SetRefreshToken updates only the refresh token field of the user.
	SetRefreshToken(ctx context.Context, id, token string) error
	// RotateRefreshToken swaps current for next atomically. Returns
	// domain.ErrRefreshTokenReused when current is no longer stored.
	RotateRefreshToken(ctx context.Context, id, current, next string) error
	// ClearRefreshToken removes the stored refresh token.
	ClearRefreshToken(ctx context.Context, id string) error
}
