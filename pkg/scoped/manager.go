package scoped

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/sitekit/pkg/site"
)

// siteFieldNames are tried in order when no relation path is configured.
var siteFieldNames = []string{"site", "sites"}

// Querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by Manager.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Manager limits queries on a model to rows associated with a site.
//
//	articles, err := scoped.NewManager[Article](pool, articleModel)
//	items, err := articles.ByRequest(r).All(ctx)
type Manager[T any] struct {
	db            Querier
	model         Model
	field         string
	defaultSiteID int64
	selectSQL     string
	countSQL      string
}

// NewManager creates a manager for model.
// Returns ErrSiteFieldNotFound if the model has no site relation and no path
// was configured, and ErrInvalidFieldPath if the configured path does not resolve.
func NewManager[T any](db Querier, model Model, opts ...Option) (*Manager[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	field := o.field
	if field == "" {
		var err error
		if field, err = discoverSiteField(&model); err != nil {
			return nil, err
		}
	}

	from, filter, err := buildJoin(&model, field)
	if err != nil {
		return nil, err
	}

	columns := model.Columns
	if len(columns) == 0 {
		columns = structColumns[T]()
	}

	where := fmt.Sprintf(" FROM %s WHERE %s = $1", from, filter)
	return &Manager[T]{
		db:            db,
		model:         model,
		field:         field,
		defaultSiteID: o.defaultSiteID,
		selectSQL:     "SELECT " + selectColumns(columns) + where + " ORDER BY t0." + quote(model.pk()),
		countSQL:      "SELECT count(*)" + where,
	}, nil
}

// MustNewManager is like NewManager but panics on configuration errors.
// Managers are usually built at startup where a panic is the right outcome.
func MustNewManager[T any](db Querier, model Model, opts ...Option) *Manager[T] {
	m, err := NewManager[T](db, model, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// SiteField returns the relation path used to reach the site.
func (m *Manager[T]) SiteField() string {
	return m.field
}

// ByID returns rows of the given site. Zero means the default site.
func (m *Manager[T]) ByID(siteID int64) *Query[T] {
	if siteID == 0 {
		siteID = m.defaultSiteID
	}
	return &Query[T]{
		db:       m.db,
		model:    m.model.displayName(),
		sql:      m.selectSQL,
		countSQL: m.countSQL,
		args:     []any{siteID},
	}
}

// ByRequest returns rows of the request's site.
// An unresolved site yields an empty query, not an error.
func (m *Manager[T]) ByRequest(r *http.Request) *Query[T] {
	return m.ByContext(r.Context())
}

// ByContext is ByRequest for code that only has the request context.
// Request sites have no stored rows, so they get an empty query as well.
func (m *Manager[T]) ByContext(ctx context.Context) *Query[T] {
	s, ok := site.FromContext(ctx)
	if !ok || s.FromRequest {
		return m.None()
	}
	return m.ByID(s.ID)
}

// None returns a query that matches nothing and never reaches the database.
func (m *Manager[T]) None() *Query[T] {
	return &Query[T]{model: m.model.displayName(), empty: true}
}

func discoverSiteField(m *Model) (string, error) {
	for _, name := range siteFieldNames {
		rel, ok := m.relation(name)
		if ok && (rel.Kind == ForeignKey || rel.Kind == ManyToMany) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: scoped.Manager couldn't find a related field named %s in %s",
		ErrSiteFieldNotFound, strings.Join(siteFieldNames, " or "), m.displayName())
}

// buildJoin walks path from m and returns the FROM clause with its joins and
// the qualified column holding the site ID. The root table is aliased t0.
func buildJoin(m *Model, path string) (string, string, error) {
	invalid := func(format string, args ...any) (string, string, error) {
		return "", "", fmt.Errorf("%w: %q: %s", ErrInvalidFieldPath, path, fmt.Sprintf(format, args...))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s AS t0", quote(m.Table))

	segments := strings.Split(path, ".")
	cur, alias := m, "t0"
	for i, name := range segments {
		if name == "" {
			return invalid("empty segment")
		}
		rel, ok := cur.relation(name)
		if !ok {
			return invalid("%s has no relation %q", cur.displayName(), name)
		}
		last := i == len(segments)-1
		next := fmt.Sprintf("t%d", i+1)

		switch rel.Kind {
		case ForeignKey:
			if rel.Column == "" {
				return invalid("relation %q has no column", name)
			}
			if last {
				return b.String(), alias + "." + quote(rel.Column), nil
			}
			if rel.Target == nil {
				return invalid("relation %q has no target model", name)
			}
			fmt.Fprintf(&b, " JOIN %s AS %s ON %s.%s = %s.%s",
				quote(rel.Target.Table), next, next, quote(rel.Target.pk()), alias, quote(rel.Column))

		case ManyToMany:
			if rel.Through == "" || rel.SourceColumn == "" || rel.TargetColumn == "" {
				return invalid("relation %q needs a join table with source and target columns", name)
			}
			through := fmt.Sprintf("j%d", i)
			fmt.Fprintf(&b, " JOIN %s AS %s ON %s.%s = %s.%s",
				quote(rel.Through), through, through, quote(rel.SourceColumn), alias, quote(cur.pk()))
			if last {
				return b.String(), through + "." + quote(rel.TargetColumn), nil
			}
			if rel.Target == nil {
				return invalid("relation %q has no target model", name)
			}
			fmt.Fprintf(&b, " JOIN %s AS %s ON %s.%s = %s.%s",
				quote(rel.Target.Table), next, next, quote(rel.Target.pk()), through, quote(rel.TargetColumn))

		default:
			return invalid("relation %q has unsupported kind %s", name, rel.Kind)
		}
		cur, alias = rel.Target, next
	}

	return invalid("empty path")
}

func selectColumns(columns []string) string {
	if len(columns) == 0 {
		return "t0.*"
	}
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = "t0." + quote(c)
	}
	return strings.Join(cols, ", ")
}
