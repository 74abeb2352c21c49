package main

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eduplay/platform-api/internal/infrastructure/config"
	mongostore "github.com/eduplay/platform-api/internal/infrastructure/db/mongo"
	redisstore "github.com/eduplay/platform-api/internal/infrastructure/db/redis"
)

const connectAttempts = 5

// connectBackoff retries store connections while the stores come up next
// to the service: 500ms doubling, capped at 5s, five retries.
func connectBackoff() retry.Backoff {
	b := retry.NewExponential(500 * time.Millisecond)
	b = retry.WithCappedDuration(5*time.Second, b)
	return retry.WithMaxRetries(connectAttempts, b)
}

func connectMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	var (
		client *mongo.Client
		db     *mongo.Database
	)
	err := retry.Do(ctx, connectBackoff(), func(ctx context.Context) error {
		var err error
		client, db, err = mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			log.Warn().Err(err).Msg("mongo not reachable, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	return client, db, err
}

func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*goredis.Client, error) {
	var rdb *goredis.Client
	err := retry.Do(ctx, connectBackoff(), func(ctx context.Context) error {
		var err error
		rdb, err = redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis not reachable, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	return rdb, err
}
