package memcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlens/internal/adapters/memcache"
	"wanderlens/internal/domain"
)

func TestCache_RoundTripIsACopy(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	in := domain.PlanResult{Destination: domain.Bali, Bundles: []domain.Bundle{{ID: "ba1", Badges: []string{"Eco"}}}}
	require.NoError(t, c.Set(ctx, "plan:bali", in, 60))
	in.Bundles[0].Badges[0] = "changed"

	var got domain.PlanResult
	ok, err := c.Get(ctx, "plan:bali", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Eco", got.Bundles[0].Badges[0])
	assert.Equal(t, 1, c.Len())
}

func TestCache_MissExpiryAndDel(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	var s string
	ok, err := c.Get(ctx, "absent", &s)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "short", "v", 0)) // default expiration, which is none
	require.NoError(t, c.Del(ctx, "short"))
	ok, _ = c.Get(ctx, "short", &s)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "gone", "v", 1))
	assert.Eventually(t, func() bool {
		ok, _ := c.Get(ctx, "gone", &s)
		return !ok
	}, 3*time.Second, 50*time.Millisecond)
}
