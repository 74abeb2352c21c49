package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eduplay/platform-api/internal/core/domain"
	"github.com/eduplay/platform-api/internal/core/ports"
)

type stubSessionService struct {
	registerFn     func(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error)
	loginFn        func(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error)
	logoutFn       func(ctx context.Context, p *ports.Principal) error
	refreshFn      func(ctx context.Context, token string) (*ports.TokenPair, error)
	authenticateFn func(ctx context.Context, token string) (*ports.Principal, error)
}

func (s *stubSessionService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubSessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, in)
}

func (s *stubSessionService) Logout(ctx context.Context, p *ports.Principal) error {
	return s.logoutFn(ctx, p)
}

func (s *stubSessionService) Refresh(ctx context.Context, token string) (*ports.TokenPair, error) {
	return s.refreshFn(ctx, token)
}

func (s *stubSessionService) Authenticate(ctx context.Context, token string) (*ports.Principal, error) {
	return s.authenticateFn(ctx, token)
}

type stubGameService struct {
	registerFn func(ctx context.Context, in ports.RegisterGameInput) (*domain.GameRegistration, error)
}

func (s *stubGameService) Register(ctx context.Context, in ports.RegisterGameInput) (*domain.GameRegistration, error) {
	return s.registerFn(ctx, in)
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
