package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/eduplay/platform-api/internal/api/middleware"
	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

// ctxPrincipal returns the caller injected by the Auth middleware. Its
// absence means the route was mounted without the middleware, which is
// reported as an unauthorized request rather than a server error.
func ctxPrincipal(c echo.Context) (*ports.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.User == nil {
		return nil, domain.ErrUnauthorizedRequest
	}
	return p, nil
}
