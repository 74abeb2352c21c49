package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

type stubAuthenticator struct {
	authenticateFn func(ctx context.Context, token string) (*ports.Principal, error)
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, token string) (*ports.Principal, error) {
	return s.authenticateFn(ctx, token)
}

func acceptToken(t *testing.T, want string) *stubAuthenticator {
	return &stubAuthenticator{
		authenticateFn: func(ctx context.Context, token string) (*ports.Principal, error) {
			if token != want {
				t.Fatalf("expected token %q, got %q", want, token)
			}
			return &ports.Principal{User: &domain.User{ID: "u1", UserName: "alice"}, TokenID: "jti-1"}, nil
		},
	}
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(acceptToken(t, "header-token"))(func(c echo.Context) error {
		called = true
		p, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not set")
		}
		if p.User.UserName != "alice" || p.TokenID != "jti-1" {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_CookieWinsOverHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(acceptToken(t, "cookie-token"))(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	authn := &stubAuthenticator{
		authenticateFn: func(ctx context.Context, token string) (*ports.Principal, error) {
			t.Fatalf("authenticator should not be called")
			return nil, nil
		},
	}
	handler := Auth(authn)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrUnauthorizedRequest) {
		t.Fatalf("expected unauthorized request, got %v", err)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(&stubAuthenticator{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); domain.KindOf(err) != domain.KindAuth {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer revoked")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	authn := &stubAuthenticator{
		authenticateFn: func(ctx context.Context, token string) (*ports.Principal, error) {
			return nil, domain.ErrInvalidAccessToken
		},
	}
	handler := Auth(authn)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidAccessToken) {
		t.Fatalf("expected invalid access token, got %v", err)
	}
}
