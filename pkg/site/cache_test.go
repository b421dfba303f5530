package site_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/site"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores positive and negative results", func(t *testing.T) {
		t.Parallel()

		cache := site.NewMemoryCache()

		_, ok := cache.Get(ctx, "example.com")
		assert.False(t, ok)

		require.NoError(t, cache.Set(ctx, "example.com", exampleCom))
		require.NoError(t, cache.Set(ctx, "unknown.test", nil))

		got, ok := cache.Get(ctx, "example.com")
		assert.True(t, ok)
		assert.Same(t, exampleCom, got)

		got, ok = cache.Get(ctx, "unknown.test")
		assert.True(t, ok)
		assert.Nil(t, got)

		assert.Equal(t, 2, cache.Len())
	})

	t.Run("clear drops everything", func(t *testing.T) {
		t.Parallel()

		cache := site.NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "example.com", exampleCom))
		require.NoError(t, cache.Clear(ctx))

		_, ok := cache.Get(ctx, "example.com")
		assert.False(t, ok)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()

		cache := site.NewMemoryCache()
		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				host := fmt.Sprintf("host-%d.test", i%10)
				_ = cache.Set(ctx, host, exampleCom)
				_, _ = cache.Get(ctx, host)
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, cache.Len())
	})
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var cache site.NoOpCache

	require.NoError(t, cache.Set(ctx, "example.com", exampleCom))
	_, ok := cache.Get(ctx, "example.com")
	assert.False(t, ok)
	assert.NoError(t, cache.Clear(ctx))
}
