package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

type cachedThing struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

func TestCacheJSONRoundTrip(t *testing.T) {
	mr, rc := newMiniRedis(t)
	c := NewCache(rc, time.Minute, nil)
	ctx := context.Background()

	c.SetJSON(ctx, UserCacheKey("u1"), cachedThing{ID: "u1", Count: 3})

	var got cachedThing
	require.True(t, c.GetJSON(ctx, UserCacheKey("u1"), &got))
	assert.Equal(t, cachedThing{ID: "u1", Count: 3}, got)
	assert.Equal(t, time.Minute, mr.TTL("cache:user:u1"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, c.GetJSON(ctx, UserCacheKey("u1"), &got))
}

func TestCacheInvalidateByPrefix(t *testing.T) {
	mr, rc := newMiniRedis(t)
	c := NewCache(rc, time.Minute, nil)
	ctx := context.Background()

	c.SetBytes(ctx, UserCacheKey("a"), []byte("1"))
	c.SetBytes(ctx, UserCacheKey("b"), []byte("2"))
	c.SetBytes(ctx, ArticleCacheKey("x"), []byte("3"))

	c.InvalidateByPrefix(ctx, UserCachePrefix)
	assert.False(t, mr.Exists("cache:user:a"))
	assert.False(t, mr.Exists("cache:user:b"))
	assert.True(t, mr.Exists("cache:article:x"))

	c.Delete(ctx, ArticleCacheKey("x"))
	assert.False(t, mr.Exists("cache:article:x"))
}

func TestCacheDisabledWithoutRedis(t *testing.T) {
	ctx := context.Background()
	for _, c := range []*Cache{nil, NewCache(nil, 0, nil)} {
		c.SetJSON(ctx, "k", cachedThing{ID: "x"})
		var got cachedThing
		assert.False(t, c.GetJSON(ctx, "k", &got))
		c.InvalidateByPrefix(ctx, "k")
		c.Delete(ctx, "k")
	}
}
