package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

const (
	// PrincipalKey is the echo.Context key holding the authenticated *ports.Principal.
	PrincipalKey = "principal"

	AccessTokenCookie = "accessToken"
)

// Authenticator resolves the caller behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*ports.Principal, error)
}

// Auth reads the access token from the accessToken cookie or, failing that,
// a Bearer Authorization header, and injects the resolved principal into the
// context.
func Auth(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := accessToken(c)
			if token == "" {
				return domain.ErrUnauthorizedRequest
			}

			principal, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal injected by Auth, if any.
func PrincipalFrom(c echo.Context) (*ports.Principal, bool) {
	p, ok := c.Get(PrincipalKey).(*ports.Principal)
	return p, ok && p != nil
}

func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
