// Package cache keeps barcode lookups in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"trinity/config"
	"trinity/internal/domain/lifecycle"
	"trinity/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	keyPrefix  = "trinity:off:barcode:"
	defaultTTL = 24 * time.Hour
)

// Params defines the dependencies of the lookup cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewLookupCache returns a Redis cache, or a no-op cache when no address is configured.
func NewLookupCache(params Params) service.LookupCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis address not configured, barcode lookups are not cached")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only degrades lookups.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLookupCache(client, cfg.TTL)
}

// RedisLookupCache stores lookup results as JSON strings with a TTL.
type RedisLookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLookupCache wraps an existing client. A non-positive ttl means 24h.
func NewRedisLookupCache(client *redis.Client, ttl time.Duration) *RedisLookupCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisLookupCache{client: client, ttl: ttl}
}

// Get returns the cached product, or false on a miss.
func (c *RedisLookupCache) Get(ctx context.Context, barcode string) (*service.NutritionProduct, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+barcode).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}

	var product service.NutritionProduct
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, false, errors.Wrap(err, "decode cached product")
	}

	return &product, true, nil
}

// Set stores the product under its barcode.
func (c *RedisLookupCache) Set(ctx context.Context, barcode string, product *service.NutritionProduct) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "encode product")
	}

	if err := c.client.Set(ctx, keyPrefix+barcode, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*service.NutritionProduct, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, string, *service.NutritionProduct) error {
	return nil
}
