package site_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/site"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("finds sites by domain ignoring case", func(t *testing.T) {
		t.Parallel()

		store := site.NewMemoryStore(exampleCom, exampleOrg)

		got, err := store.FindByDomain(ctx, "Example.ORG")
		require.NoError(t, err)
		assert.Same(t, exampleOrg, got)

		_, err = store.FindByDomain(ctx, "unknown.test")
		assert.ErrorIs(t, err, site.ErrSiteNotFound)
	})

	t.Run("finds sites by ID", func(t *testing.T) {
		t.Parallel()

		store := site.NewMemoryStore(exampleCom)

		got, err := store.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Same(t, exampleCom, got)

		_, err = store.FindByID(ctx, 7)
		assert.ErrorIs(t, err, site.ErrSiteNotFound)
	})

	t.Run("rejects invalid sites", func(t *testing.T) {
		t.Parallel()

		store := site.NewMemoryStore(exampleCom)

		tests := []struct {
			name string
			site *site.Site
		}{
			{"nil", nil},
			{"zero id", &site.Site{Domain: "a.test"}},
			{"empty domain", &site.Site{ID: 5, Domain: "  "}},
			{"duplicate domain", &site.Site{ID: 5, Domain: "EXAMPLE.com"}},
		}
		for _, tt := range tests {
			assert.ErrorIs(t, store.Add(tt.site), site.ErrInvalidSite, tt.name)
		}
		assert.Len(t, store.All(), 1)
	})

	t.Run("replacing a site drops its old domain", func(t *testing.T) {
		t.Parallel()

		store := site.NewMemoryStore(&site.Site{ID: 1, Domain: "old.test", Name: "Old"})
		require.NoError(t, store.Add(&site.Site{ID: 1, Domain: "new.test", Name: "New"}))

		_, err := store.FindByDomain(ctx, "old.test")
		assert.ErrorIs(t, err, site.ErrSiteNotFound)

		got, err := store.FindByDomain(ctx, "new.test")
		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
	})

	t.Run("lists sites ordered by ID", func(t *testing.T) {
		t.Parallel()

		store := site.NewMemoryStore(exampleOrg, exampleCom)
		assert.Equal(t, []*site.Site{exampleCom, exampleOrg}, store.All())
	})

	t.Run("panics on invalid seed", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			site.NewMemoryStore(&site.Site{ID: 0, Domain: "a.test"})
		})
	})
}
