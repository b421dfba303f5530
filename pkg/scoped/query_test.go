package scoped_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/scoped"
)

// fakeRows serves fixed rows for the given columns.
type fakeRows struct {
	columns []string
	rows    [][]any
	pos     int
	closed  bool
}

func (r *fakeRows) Close()                        { r.closed = true }
func (r *fakeRows) Err() error                    { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *string:
			*p = row[i].(string)
		}
	}
	return nil
}

func TestQuery_All(t *testing.T) {
	t.Parallel()

	t.Run("maps rows of struct columns", func(t *testing.T) {
		t.Parallel()

		rows := &fakeRows{
			columns: []string{"id", "title"},
			rows: [][]any{
				{int64(1), "Hello"},
				{int64(2), "World"},
			},
		}
		db := &mockQuerier{}
		db.On("Query", articleSelectSQL, []any{int64(3)}).Return(rows, nil).Once()

		items, err := scoped.MustNewManager[Article](db, articleModel).ByID(3).All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Article{{ID: 1, Title: "Hello"}, {ID: 2, Title: "World"}}, items)
		assert.True(t, rows.closed)
		db.AssertExpectations(t)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()

		db := &mockQuerier{}
		db.On("Query", articleSelectSQL, []any{int64(1)}).Return(&fakeRows{columns: []string{"id", "title"}}, nil).Once()

		items, err := scoped.MustNewManager[Article](db, articleModel).ByID(1).All(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

type Base struct {
	ID int64 `db:"id"`
}

type Page struct {
	Base
	SiteID    int64
	HTMLTitle string
	Slug      string `db:"slug,omitempty"`
	Draft     string `db:"-"`
	internal  string
}

func TestNewManager_Columns(t *testing.T) {
	t.Parallel()

	model := scoped.Model{
		Table:     "pages",
		Relations: []scoped.Relation{{Name: "site", Kind: scoped.ForeignKey, Column: "site_id"}},
	}

	t.Run("derived from struct fields", func(t *testing.T) {
		t.Parallel()

		m := scoped.MustNewManager[Page](&mockQuerier{}, model)
		sql, _ := m.ByID(1).SQL()
		assert.Equal(t,
			`SELECT t0."id", t0."site_id", t0."html_title", t0."slug" FROM "pages" AS t0 WHERE t0."site_id" = $1 ORDER BY t0."id"`,
			sql)
	})

	t.Run("explicit columns win", func(t *testing.T) {
		t.Parallel()

		withColumns := model
		withColumns.Columns = []string{"id"}

		m := scoped.MustNewManager[Page](&mockQuerier{}, withColumns)
		sql, _ := m.ByID(1).SQL()
		assert.Contains(t, sql, `SELECT t0."id" FROM`)
	})

	t.Run("non-struct rows select everything", func(t *testing.T) {
		t.Parallel()

		m := scoped.MustNewManager[int64](&mockQuerier{}, model)
		sql, _ := m.ByID(1).SQL()
		assert.Contains(t, sql, `SELECT t0.* FROM`)
	})
}
