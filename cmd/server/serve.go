package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/eduplay/platform-api/docs"
	"github.com/eduplay/platform-api/internal/api"
	"github.com/eduplay/platform-api/internal/api/handler"
	"github.com/eduplay/platform-api/internal/core/service"
	"github.com/eduplay/platform-api/internal/infrastructure/config"
	mongostore "github.com/eduplay/platform-api/internal/infrastructure/db/mongo"
	redisstore "github.com/eduplay/platform-api/internal/infrastructure/db/redis"
	"github.com/eduplay/platform-api/internal/infrastructure/http/handlers"
	"github.com/eduplay/platform-api/pkg/logger"
)

const (
	serviceName     = "platform-api"
	shutdownTimeout = 10 * time.Second
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var ensureIndexes bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Connect to MongoDB and Redis and serve the HTTP API until
SIGINT or SIGTERM is received.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), ensureIndexes)
		},
	}
	cmd.Flags().BoolVar(&ensureIndexes, "ensure-indexes", true, "create MongoDB indexes on startup")

	return cmd
}

func runServe(ctx context.Context, ensureIndexes bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	mongoClient, db, err := connectMongo(ctx, cfg, log)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("store", "mongodb").Wrap(err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := connectRedis(ctx, cfg, log)
	if err != nil {
		return oops.Code("DB_CONNECT_FAILED").With("store", "redis").Wrap(err)
	}
	defer func() { _ = rdb.Close() }()

	if ensureIndexes {
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("failed to ensure mongo indexes")
		}
	}

	sessions := service.NewSessionService(service.SessionDeps{
		Users: mongostore.NewUserRepository(db),
		Tokens: service.NewJWTIssuer(service.JWTConfig{
			AccessSecret:  cfg.Auth.AccessTokenSecret,
			AccessTTL:     cfg.Auth.AccessTokenExpiry,
			RefreshSecret: cfg.Auth.RefreshTokenSecret,
			RefreshTTL:    cfg.Auth.RefreshTokenExpiry,
		}),
		Hasher:   service.NewBcryptHasher(cfg.Auth.BcryptCost),
		Throttle: redisstore.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow),
		Denylist: redisstore.NewDenylist(rdb),
		Audit:    mongostore.NewAuditRepository(db),
	}, log)
	games := service.NewGameService(mongostore.NewGameRepository(db), log)

	docs.SwaggerInfo.BasePath = cfg.APIPrefix

	e := api.NewRouter(api.RouterConfig{
		Sessions: sessions,
		Games:    games,
		Cookies: handler.CookieOptions{
			Secure: cfg.Cookie.Secure,
			Domain: cfg.Cookie.Domain,
		},
		Prefix: cfg.APIPrefix,
		Checks: map[string]handlers.Check{
			"mongodb": handlers.MongoCheck(db),
			"redis":   handlers.RedisCheck(rdb),
		},
		Logger: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("prefix", cfg.APIPrefix).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return oops.Code("HTTP_SERVER_FAILED").Wrap(err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return oops.Code("HTTP_SHUTDOWN_FAILED").Wrap(err)
	}

	log.Info().Msg("http server stopped")
	return nil
}
