package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/eduplay/platform-api/internal/api/handler"
	"github.com/eduplay/platform-api/internal/api/middleware"
	"github.com/eduplay/platform-api/internal/core/ports"
	opshttp "github.com/eduplay/platform-api/internal/infrastructure/http"
	"github.com/eduplay/platform-api/internal/infrastructure/http/handlers"
)

const DefaultPrefix = "/api/v1/users"

// RouterConfig carries everything NewRouter wires into the Echo instance.
type RouterConfig struct {
	Sessions ports.SessionService
	Games    ports.GameService
	Cookies  handler.CookieOptions
	// Prefix is the mount point of the user routes. Defaults to DefaultPrefix.
	Prefix string
	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handlers.Check
	Logger zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)
	// X-Forwarded-For is honoured only from loopback and private proxies.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// Metrics wrap the logger: the logger renders handler errors, so the
	// committed status is what gets counted.
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "eduplay",
		Registerer: registerer,
	}))
	e.Use(middleware.RequestLogger(cfg.Logger))

	// --- Operational routes (no auth required) ---
	opshttp.RegisterOpsRoutes(e, cfg.Checks, gatherer)

	// --- User routes ---
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	sessionHandler := handler.NewSessionHandler(cfg.Sessions, cfg.Cookies)
	gameHandler := handler.NewGameHandler(cfg.Games)
	authMiddleware := middleware.Auth(cfg.Sessions)

	users := e.Group(prefix)
	users.POST("/register", sessionHandler.Register)
	users.POST("/register-game", gameHandler.Register)
	users.POST("/login", sessionHandler.Login)
	users.POST("/logout", sessionHandler.Logout, authMiddleware)
	users.POST("/refresh", sessionHandler.Refresh)

	return e
}
