package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

type payload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestClientRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	var missed payload
	hit, err := c.Get(ctx, "catalog:products", &missed)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "catalog:products", payload{Name: "Keyboard", Price: 79.99}, time.Minute))

	var got payload
	hit, err = c.Get(ctx, "catalog:products", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Keyboard", got.Name)
}

func TestClientTTL(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", payload{Name: "x"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got payload
	hit, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestClientDelete(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", payload{}, time.Minute))
	require.NoError(t, c.Set(ctx, "b", payload{}, time.Minute))
	require.NoError(t, c.Delete(ctx, "a", "b"))
	require.NoError(t, c.Delete(ctx)) // no-op

	var got payload
	hit, err := c.Get(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
