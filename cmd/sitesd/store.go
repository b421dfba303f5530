package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/mongo"
	"github.com/dmitrymomot/sitekit/pkg/pg"
	"github.com/dmitrymomot/sitekit/pkg/redis"
	"github.com/dmitrymomot/sitekit/pkg/site"
)

// backend holds the connections opened for the selected store and cache.
type backend struct {
	store  site.Store
	cache  site.Cache
	pool   *pgxpool.Pool
	checks []httpserver.CheckFunc
	close  []func(context.Context) error
}

func (b *backend) Close(ctx context.Context, log *slog.Logger) {
	for i := len(b.close) - 1; i >= 0; i-- {
		if err := b.close[i](ctx); err != nil {
			log.ErrorContext(ctx, "failed to close backend", logger.Error(err))
		}
	}
}

func openBackend(ctx context.Context, cfg appConfig, log *slog.Logger) (*backend, error) {
	b := &backend{}

	switch cfg.Store {
	case storePostgres:
		pgCfg, err := config.Load[pg.Config]()
		if err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, err
		}
		b.close = append(b.close, func(context.Context) error { pool.Close(); return nil })
		if err := pg.Migrate(ctx, pool, pgCfg, log.With(logger.Component("migrations"))); err != nil {
			b.Close(ctx, log)
			return nil, err
		}
		b.pool = pool
		b.store = site.NewPostgresStore(pool, cfg.Table)
		b.checks = append(b.checks, pg.Healthcheck(pool))

	case storeMongo:
		mongoCfg, err := config.Load[mongo.Config]()
		if err != nil {
			return nil, err
		}
		client, err := mongo.Connect(ctx, mongoCfg)
		if err != nil {
			return nil, err
		}
		b.close = append(b.close, client.Disconnect)
		b.store = site.NewMongoStore(client.Database(mongoCfg.Database), cfg.Table)
		b.checks = append(b.checks, mongo.Healthcheck(client))

	case storeFile:
		store, err := site.LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		b.store = store

	default:
		return nil, fmt.Errorf("unknown SITES_STORE %q", cfg.Store)
	}

	switch cfg.Cache {
	case cacheMemory, "":
		b.cache = site.NewMemoryCache()

	case cacheRedis:
		redisCfg, err := config.Load[redis.Config]()
		if err != nil {
			b.Close(ctx, log)
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			b.Close(ctx, log)
			return nil, err
		}
		b.close = append(b.close, func(context.Context) error { return client.Close() })
		b.cache = site.NewRedisCache(client,
			site.WithRedisPrefix(cfg.CachePrefix),
			site.WithRedisLogger(log),
		)
		b.checks = append(b.checks, redis.Healthcheck(client))

	case cacheNone:
		b.cache = site.NoOpCache{}

	default:
		b.Close(ctx, log)
		return nil, fmt.Errorf("unknown SITES_CACHE %q", cfg.Cache)
	}

	return b, nil
}
