package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistInMemory(t *testing.T) {
	b := NewTokenBlacklist(nil)
	ctx := context.Background()

	assert.False(t, b.IsRevoked(ctx, "tok"))
	require.NoError(t, b.Revoke(ctx, "tok", time.Now().Add(time.Minute)))
	assert.True(t, b.IsRevoked(ctx, "tok"))

	require.NoError(t, b.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	assert.False(t, b.IsRevoked(ctx, "old"))
}

func TestBlacklistRedis(t *testing.T) {
	mr, rc := newMiniRedis(t)
	b := NewTokenBlacklist(rc)
	ctx := context.Background()

	require.NoError(t, b.Revoke(ctx, "tok", time.Now().Add(time.Minute)))
	assert.True(t, mr.Exists("jwt:blacklist:tok"))
	assert.True(t, b.IsRevoked(ctx, "tok"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, b.IsRevoked(ctx, "tok"))
}
