package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, 5*time.Minute, nil), mr
}

type cachedValue struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, KeyLocations, cachedValue{Name: "Основний зал", Price: 500}))

	var got cachedValue
	hit, err := c.GetJSON(ctx, KeyLocations, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Основний зал", got.Name)
	assert.InDelta(t, 500.0, got.Price, 1e-9)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	c, _ := newTestCache(t)

	var got cachedValue
	hit, err := c.GetJSON(context.Background(), "missing:key", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_TTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, KeySettings, cachedValue{Name: "settings"}))

	mr.FastForward(6 * time.Minute)

	var got cachedValue
	hit, err := c.GetJSON(ctx, KeySettings, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, KeyServices, cachedValue{Name: "services"}))
	require.NoError(t, c.SetJSON(ctx, KeyRentalItems, cachedValue{Name: "items"}))

	require.NoError(t, c.Invalidate(ctx, KeyServices, KeyRentalItems))

	var got cachedValue
	hit, err := c.GetJSON(ctx, KeyServices, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_CorruptedValue(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set(KeyLocations, "not-json"))

	var got cachedValue
	_, err := c.GetJSON(context.Background(), KeyLocations, &got)
	assert.ErrorIs(t, err, ErrDecode)
}
