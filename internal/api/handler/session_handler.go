package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplay/platform-api/internal/api/metrics"
	"github.com/eduplay/platform-api/internal/api/middleware"
	"github.com/eduplay/platform-api/internal/core/ports"
)

const RefreshTokenCookie = "refreshToken"

// CookieOptions controls the attributes of the session cookies.
type CookieOptions struct {
	Secure bool
	Domain string
}

// SessionHandler exposes account registration and the session lifecycle.
type SessionHandler struct {
	service ports.SessionService
	cookies CookieOptions
}

func NewSessionHandler(service ports.SessionService, cookies CookieOptions) *SessionHandler {
	return &SessionHandler{service: service, cookies: cookies}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  Response{data=domain.User}
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		UserName:    req.UserName,
		Password:    req.Password,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		EmployeeID:  req.EmployeeID,
		CreatorName: req.CreatorName,
		Profession:  req.Profession,
		Biography:   req.Biography,
	})
	metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, user, "User registered Successfully")
}

// Login authenticates a user by userName or email and sets the session cookies.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Response{data=loginData}
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Router       /login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
		return err
	}

	result, err := h.service.Login(c.Request().Context(), ports.LoginInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		ClientIP: c.RealIP(),
	})
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	h.setSessionCookies(c, result.Tokens)
	return respond(c, http.StatusOK, loginData{
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "User LoggedIn Successfully")
}

// Logout ends the caller's session and clears the session cookies.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  ErrorResponse
// @Router       /logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), principal); err != nil {
		return err
	}
	metrics.LogoutsTotal.Inc()

	h.clearSessionCookies(c)
	return respond(c, http.StatusOK, struct{}{}, "User Logged Out")
}

// Refresh exchanges a refresh token for a new token pair. The refreshToken
// cookie takes precedence over the request body.
//
// @Summary      Refresh access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  false  "Refresh token when no cookie is sent"
// @Success      200   {object}  Response{data=tokenData}
// @Failure      401   {object}  ErrorResponse
// @Router       /refresh [post]
func (h *SessionHandler) Refresh(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		token = req.RefreshToken
	}

	pair, err := h.service.Refresh(c.Request().Context(), token)
	metrics.TokenRefreshesTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	h.setSessionCookies(c, *pair)
	return respond(c, http.StatusOK, tokenData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed")
}

func (h *SessionHandler) setSessionCookies(c echo.Context, pair ports.TokenPair) {
	c.SetCookie(h.cookie(middleware.AccessTokenCookie, pair.AccessToken))
	c.SetCookie(h.cookie(RefreshTokenCookie, pair.RefreshToken))
}

func (h *SessionHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
		cookie := h.cookie(name, "")
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

func (h *SessionHandler) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookies.Domain,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
	}
}
