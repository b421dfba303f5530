package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/sitekit/pkg/httpserver"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/scoped"
	"github.com/dmitrymomot/sitekit/pkg/site"
)

// Article is a demo row owned by a site.
type Article struct {
	ID     int64  `db:"id" json:"id"`
	SiteID int64  `db:"site_id" json:"site_id"`
	Title  string `db:"title" json:"title"`
	Body   string `db:"body" json:"body"`
}

var articleModel = scoped.Model{
	Table:   "articles",
	Columns: []string{"id", "site_id", "title", "body"},
	Relations: []scoped.Relation{
		{Name: "site", Kind: scoped.ForeignKey, Column: "site_id"},
	},
}

// newRouter wires the site middleware and the demo routes. articles is nil
// when the store has no SQL backend.
func newRouter(
	log *slog.Logger,
	resolver *site.Resolver,
	siteCfg site.Config,
	articles *scoped.Manager[Article],
	checks []httpserver.CheckFunc,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(log, checks...))

	r.Group(func(r chi.Router) {
		r.Use(site.Middleware(resolver, siteCfg.MiddlewareOptions()...))
		r.Use(site.RequireSite(nil))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, log, r, site.MustFromContext(r.Context()))
		})

		if articles != nil {
			r.Get("/articles", func(w http.ResponseWriter, r *http.Request) {
				items, err := articles.ByRequest(r).All(r.Context())
				if err != nil {
					log.ErrorContext(r.Context(), "failed to list articles", logger.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				writeJSON(w, log, r, items)
			})
		}
	})

	return r
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
