package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/report/domain"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	ctx := context.Background()
	for _, c := range []*RedisCache{nil, NewRedisCache(nil, time.Minute)} {
		c.Set(ctx, 0, &domain.InventoryReport{TotalProducts: 1})
		_, gen, ok := c.Get(ctx)
		assert.False(t, ok)
		assert.Negative(t, gen)
		assert.NoError(t, c.Invalidate(ctx))
	}
}

func TestZeroTTLDisablesCache(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	c := NewRedisCache(client, 0)
	_, _, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.NoError(t, c.Invalidate(context.Background()))
}

func TestNewRedisClientWithoutAddr(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRoundTripAndTTL(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()
	c := NewRedisCache(client, time.Minute)

	_, gen, ok := c.Get(ctx)
	require.False(t, ok)
	require.Equal(t, int64(0), gen)

	c.Set(ctx, gen, &domain.InventoryReport{TotalProducts: 3, TotalValue: "12.50"})
	assert.Equal(t, time.Minute, mr.TTL(ReportKey(0)))

	got, gen, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(0), gen)
	assert.Equal(t, 3, got.TotalProducts)
	assert.Equal(t, "12.50", got.TotalValue)

	mr.FastForward(time.Minute + time.Second)
	_, _, ok = c.Get(ctx)
	assert.False(t, ok)
}

func TestInvalidateOrphansEarlierReports(t *testing.T) {
	_, client := newMiniredis(t)
	ctx := context.Background()
	c := NewRedisCache(client, time.Minute)

	_, before, _ := c.Get(ctx)
	require.NoError(t, c.Invalidate(ctx))

	// A report built from data read before the write is stored too late to be served.
	c.Set(ctx, before, &domain.InventoryReport{TotalProducts: 1})
	_, gen, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, before+1, gen)

	c.Set(ctx, gen, &domain.InventoryReport{TotalProducts: 2})
	got, _, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, 2, got.TotalProducts)
}

func TestMalformedPayloadIsDiscarded(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()
	c := NewRedisCache(client, time.Minute)

	require.NoError(t, mr.Set(ReportKey(0), "{not json"))
	_, gen, ok := c.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, int64(0), gen)
	assert.False(t, mr.Exists(ReportKey(0)))
}

func TestUnreachableRedisIsAMiss(t *testing.T) {
	mr, client := newMiniredis(t)
	c := NewRedisCache(client, time.Minute)
	mr.Close()

	_, gen, ok := c.Get(context.Background())
	assert.False(t, ok)
	assert.Negative(t, gen)
	assert.Error(t, c.Invalidate(context.Background()))
}
