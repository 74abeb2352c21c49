package ports

import (
	"time"

	"github.com/eduplay/platform-api/internal/core/domain"
)

// TokenClaims is the verified content of an access or refresh token.
type TokenClaims struct {
	UserID    string
	TokenID   string
	UserName  string
	Email     string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session credentials. Secrets and lifetimes
// are fixed when the issuer is constructed.
type TokenIssuer interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken(user *domain.User) (string, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
	VerifyRefreshToken(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
