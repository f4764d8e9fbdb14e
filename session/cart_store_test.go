package session

import (
	"context"
	"testing"
	"time"

	"Gin_redis_lending_tracker/lending"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseCarts(t *testing.T, s CartStore) {
	t.Helper()
	ctx := context.Background()

	c, err := s.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	got, err := s.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)

	got.Lines = append(got.Lines, lending.CartLine{EquipmentID: "e1", Amount: 2})
	require.NoError(t, s.Save(ctx, got))

	again, err := s.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []lending.CartLine{{EquipmentID: "e1", Amount: 2}}, again.Lines)

	require.NoError(t, s.Delete(ctx, c.ID))
	_, err = s.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)

	_, err = s.Get(ctx, "never")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryCartStore(t *testing.T) {
	exerciseCarts(t, NewMemoryCartStore(time.Minute))
}

func TestMemoryCartStore_Expires(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewMemoryCartStore(10 * time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	c, err := s.Create(ctx)
	require.NoError(t, err)

	now = now.Add(9 * time.Minute)
	require.NoError(t, s.Save(ctx, c), "save restarts the clock")
	now = now.Add(9 * time.Minute)
	_, err = s.Get(ctx, c.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryCartStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryCartStore(time.Minute)
	ctx := context.Background()
	c, err := s.Create(ctx)
	require.NoError(t, err)
	c.Lines = append(c.Lines, lending.CartLine{EquipmentID: "e1", Amount: 1})

	got, err := s.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Lines, "unsaved edits stay local")
}

func TestRedisCartStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseCarts(t, NewRedisCartStore(rdb, time.Minute))
}

func TestRedisCartStore_Expires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewRedisCartStore(rdb, 30*time.Minute)
	ctx := context.Background()

	c, err := s.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, mr.TTL(cartKey(c.ID)))

	mr.FastForward(31 * time.Minute)
	_, err = s.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryCartStore_SweepsAbandonedCarts(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := NewMemoryCartStore(10 * time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	abandoned, err := s.Create(ctx)
	require.NoError(t, err)
	now = now.Add(11 * time.Minute)

	fresh, err := s.Create(ctx)
	require.NoError(t, err)
	assert.NotContains(t, s.carts, abandoned.ID, "never read again, still swept")
	assert.Contains(t, s.carts, fresh.ID)
}

func TestCartStores_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mem := NewMemoryCartStore(0)
	mem.now = func() time.Time { return now }
	ctx := context.Background()

	c, err := mem.Create(ctx)
	require.NoError(t, err)
	now = now.Add(24 * time.Hour)
	_, err = mem.Get(ctx, c.ID)
	assert.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	for _, ttl := range []time.Duration{0, -time.Minute} {
		rs := NewRedisCartStore(rdb, ttl)
		rc, err := rs.Create(ctx)
		require.NoError(t, err)
		assert.Zero(t, mr.TTL(cartKey(rc.ID)))
		mr.FastForward(24 * time.Hour)
		_, err = rs.Get(ctx, rc.ID)
		assert.NoError(t, err)
	}
}
