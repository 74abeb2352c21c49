package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 10 * 24 * time.Hour

	useAccess  = "access"
	useRefresh = "refresh"
)

// JWTConfig holds the signing secrets and lifetimes of issued tokens.
type JWTConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// sessionClaims is the JWT payload of both token kinds. Refresh tokens only
// carry the registered claims and the use marker.
type sessionClaims struct {
	Use         string `json:"use"`
	Email       string `json:"email,omitempty"`
	UserName    string `json:"userName,omitempty"`
	CreatorName string `json:"creatorName,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256-signed JWTs.
type JWTIssuer struct {
	cfg JWTConfig
	now func() time.Time
}

func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = defaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = defaultRefreshTTL
	}
	return &JWTIssuer{cfg: cfg, now: time.Now}
}

func (i *JWTIssuer) IssueAccessToken(user *domain.User) (string, error) {
	claims := i.baseClaims(user, useAccess, i.cfg.AccessTTL)
	claims.Email = user.Email
	claims.UserName = user.UserName
	claims.CreatorName = user.CreatorName
	return i.sign(claims, i.cfg.AccessSecret)
}

func (i *JWTIssuer) IssueRefreshToken(user *domain.User) (string, error) {
	return i.sign(i.baseClaims(user, useRefresh, i.cfg.RefreshTTL), i.cfg.RefreshSecret)
}

func (i *JWTIssuer) VerifyAccessToken(token string) (*ports.TokenClaims, error) {
	return i.verify(token, useAccess, i.cfg.AccessSecret)
}

func (i *JWTIssuer) VerifyRefreshToken(token string) (*ports.TokenClaims, error) {
	return i.verify(token, useRefresh, i.cfg.RefreshSecret)
}

func (i *JWTIssuer) baseClaims(user *domain.User, use string, ttl time.Duration) *sessionClaims {
	now := i.now()
	return &sessionClaims{
		Use: use,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (i *JWTIssuer) sign(claims *sessionClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("token secret is not configured")
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", claims.Use, err)
	}
	return signed, nil
}

func (i *JWTIssuer) verify(token, use, secret string) (*ports.TokenClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Use != use {
		return nil, fmt.Errorf("%w: not a %s token", jwt.ErrTokenInvalidClaims, use)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", jwt.ErrTokenInvalidClaims)
	}

	out := &ports.TokenClaims{
		UserID:   claims.Subject,
		TokenID:  claims.ID,
		UserName: claims.UserName,
		Email:    claims.Email,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
