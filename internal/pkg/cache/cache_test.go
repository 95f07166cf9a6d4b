//go:build unit

package cache_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"vinyl-storefront/internal/pkg/cache"
	"vinyl-storefront/internal/pkg/clock"
	"vinyl-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(ttl time.Duration) (*cache.Cache[string], *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return cache.New[string](ttl, clk), clk
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(3 * time.Minute)

	_, ok := c.Get("vinyl:1")
	assert.False(t, ok)

	c.Set("vinyl:1", "abbey road")
	v, ok := c.Get("vinyl:1")
	require.True(t, ok)
	assert.Equal(t, "abbey road", v)
}

func TestCache_TTLExpiry(t *testing.T) {
	c, clk := newTestCache(3 * time.Minute)
	c.Set("vinyl:1", "abbey road")

	clk.Add(3 * time.Minute)
	v, ok := c.Get("vinyl:1")
	require.True(t, ok, "entry exactly at TTL is still fresh")
	assert.Equal(t, "abbey road", v)

	clk.Add(time.Second)
	_, ok = c.Get("vinyl:1")
	assert.False(t, ok, "entry past TTL reads as a miss")
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(3 * time.Minute)
	c.Set("vinyl:1", "a")
	c.Set("vinyl:2", "b")

	c.Invalidate("vinyl:1")

	_, ok := c.Get("vinyl:1")
	assert.False(t, ok)
	_, ok = c.Get("vinyl:2")
	assert.True(t, ok)
}

func TestCache_InvalidatePattern(t *testing.T) {
	c, _ := newTestCache(3 * time.Minute)
	c.Set("vinyl:list", "all")
	c.Set("vinyl:1", "a")
	c.Set("cart_lines:9", "lines")

	c.InvalidatePattern(regexp.MustCompile(`^vinyl:`))

	_, ok := c.Get("vinyl:list")
	assert.False(t, ok)
	_, ok = c.Get("vinyl:1")
	assert.False(t, ok)
	_, ok = c.Get("cart_lines:9")
	assert.True(t, ok)
}

func TestCache_GetOrLoad(t *testing.T) {
	t.Run("fresh entry skips loader", func(t *testing.T) {
		c, _ := newTestCache(3 * time.Minute)
		c.Set("vinyl:1", "cached")

		calls := 0
		v, err := c.GetOrLoad(context.Background(), "vinyl:1", func(context.Context) (string, error) {
			calls++
			return "loaded", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "cached", v)
		assert.Equal(t, 0, calls)
	})

	t.Run("miss invokes loader and stores result", func(t *testing.T) {
		c, _ := newTestCache(3 * time.Minute)

		calls := 0
		v, err := c.GetOrLoad(context.Background(), "vinyl:1", func(context.Context) (string, error) {
			calls++
			return "loaded", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "loaded", v)
		assert.Equal(t, 1, calls)

		cached, ok := c.Get("vinyl:1")
		require.True(t, ok)
		assert.Equal(t, "loaded", cached)
	})

	t.Run("expired entry triggers fresh load", func(t *testing.T) {
		c, clk := newTestCache(2 * time.Minute)
		c.Set("cart_lines:1", "stale")
		clk.Add(2*time.Minute + time.Second)

		v, err := c.GetOrLoad(context.Background(), "cart_lines:1", func(context.Context) (string, error) {
			return "fresh", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fresh", v)
	})

	t.Run("loader failure caches nothing", func(t *testing.T) {
		c, _ := newTestCache(3 * time.Minute)
		loadErr := errs.New("backend unavailable")

		_, err := c.GetOrLoad(context.Background(), "vinyl:1", func(context.Context) (string, error) {
			return "", loadErr
		})
		require.ErrorIs(t, err, loadErr)

		_, ok := c.Get("vinyl:1")
		assert.False(t, ok)

		// A subsequent call retries the load.
		v, err := c.GetOrLoad(context.Background(), "vinyl:1", func(context.Context) (string, error) {
			return "recovered", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "recovered", v)
	})
}

func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache(3 * time.Minute)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
