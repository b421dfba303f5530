package site

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/sitekit/pkg/pg"
)

// DefaultTable is the table PostgresStore reads sites from.
const DefaultTable = "sites"

// RowQuerier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by PostgresStore.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore reads sites from the host application's sites table.
// The table needs id, domain and name columns.
type PostgresStore struct {
	db          RowQuerier
	byDomainSQL string
	byIDSQL     string
}

// NewPostgresStore creates a store reading from table.
// An empty table name means DefaultTable. Schema-qualified names are accepted.
func NewPostgresStore(db RowQuerier, table string) *PostgresStore {
	if table == "" {
		table = DefaultTable
	}
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()

	return &PostgresStore{
		db:          db,
		byDomainSQL: fmt.Sprintf("SELECT id, domain, name FROM %s WHERE lower(domain) = lower($1) ORDER BY id LIMIT 1", ident),
		byIDSQL:     fmt.Sprintf("SELECT id, domain, name FROM %s WHERE id = $1", ident),
	}
}

func (s *PostgresStore) FindByDomain(ctx context.Context, domain string) (*Site, error) {
	return s.scan(s.db.QueryRow(ctx, s.byDomainSQL, domain))
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*Site, error) {
	return s.scan(s.db.QueryRow(ctx, s.byIDSQL, id))
}

func (s *PostgresStore) scan(row pgx.Row) (*Site, error) {
	var site Site
	if err := row.Scan(&site.ID, &site.Domain, &site.Name); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}
	return &site, nil
}
