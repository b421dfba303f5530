// Command sitesd serves a demo multi-site application: every request is
// resolved to a site by host, and /articles lists the site's articles.
//
// With the Postgres store, PG_MIGRATIONS_PATH=cmd/sitesd/migrations creates
// the demo tables on startup.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/sitekit/pkg/config"
	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/scoped"
	"github.com/dmitrymomot/sitekit/pkg/site"
)

func main() {
	cfg := config.MustLoad[appConfig]()

	log := logger.New(append(logger.FromConfig(cfg.Logger),
		logger.WithContextExtractors(site.LoggerExtractor()),
	)...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("sitesd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close(context.WithoutCancel(ctx), log)

	resolver := site.NewResolverFromConfig(b.store, cfg.Site,
		site.WithCache(b.cache),
		site.WithLogger(log.With(logger.Component("site"))),
	)

	var articles *scoped.Manager[Article]
	if b.pool != nil {
		articles, err = scoped.NewManager[Article](b.pool, articleModel,
			scoped.WithDefaultSiteID(cfg.Site.DefaultSiteID),
		)
		if err != nil {
			return err
		}
	}

	log.InfoContext(ctx, "starting sitesd",
		slog.String("store", cfg.Store),
		slog.String("cache", cfg.Cache),
		slog.String("fallback", cfg.Site.Fallback.String()),
	)

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(log, resolver, cfg.Site, articles, b.checks))
}
