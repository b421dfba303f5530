package site_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/site"
)

type fakeRow struct {
	id     int64
	domain string
	name   string
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	*dest[1].(*string) = r.domain
	*dest[2].(*string) = r.name
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	sql  string
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func TestPostgresStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("finds site by domain", func(t *testing.T) {
		t.Parallel()

		db := &fakeQuerier{row: fakeRow{id: 1, domain: "example.com", name: "Example"}}
		store := site.NewPostgresStore(db, "")

		got, err := store.FindByDomain(ctx, "Example.com")
		require.NoError(t, err)
		assert.Equal(t, &site.Site{ID: 1, Domain: "example.com", Name: "Example"}, got)
		assert.Equal(t, `SELECT id, domain, name FROM "sites" WHERE lower(domain) = lower($1) ORDER BY id LIMIT 1`, db.sql)
		assert.Equal(t, []any{"Example.com"}, db.args)
	})

	t.Run("finds site by ID in qualified table", func(t *testing.T) {
		t.Parallel()

		db := &fakeQuerier{row: fakeRow{id: 3, domain: "example.net", name: "Net"}}
		store := site.NewPostgresStore(db, "public.sites")

		got, err := store.FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, `SELECT id, domain, name FROM "public"."sites" WHERE id = $1`, db.sql)
		assert.Equal(t, []any{int64(3)}, db.args)
	})

	t.Run("maps no rows to not found", func(t *testing.T) {
		t.Parallel()

		store := site.NewPostgresStore(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}, "sites")

		_, err := store.FindByDomain(ctx, "unknown.test")
		assert.ErrorIs(t, err, site.ErrSiteNotFound)
	})

	t.Run("returns other errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("connection reset")
		store := site.NewPostgresStore(&fakeQuerier{row: fakeRow{err: boom}}, "sites")

		_, err := store.FindByID(ctx, 1)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, site.ErrSiteNotFound)
	})
}
