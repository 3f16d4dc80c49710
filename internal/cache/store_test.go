package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), s
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "c:profile", []byte(`{"a":1}`)))
	got, err := store.Get(ctx, "c:profile")

	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestRedisStore_MissingKey(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), "c:nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_KeysAndDelete(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "c:a", []byte("1")))
	require.NoError(t, store.Set(ctx, "c:b", []byte("2")))
	require.NoError(t, store.Set(ctx, "other:c", []byte("3")))

	keys, err := store.Keys(ctx, "c:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c:a", "c:b"}, keys)

	require.NoError(t, store.Delete(ctx, "c:a"))
	keys, err = store.Keys(ctx, "c:")
	require.NoError(t, err)
	assert.Equal(t, []string{"c:b"}, keys)
}

func TestRedisStore_ConnectionFailureIsNotNotFound(t *testing.T) {
	store, s := newRedisStore(t)
	s.Close()

	_, err := store.Get(context.Background(), "c:a")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCache_OverRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	c, _ := newTestCache(t, store)
	ctx := context.Background()

	Set(ctx, c, "leaderboard:user-1", []string{"a", "b"}, "user-1")
	got, ok := Get[[]string](ctx, c, "leaderboard:user-1", "user-1")

	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	c.Clear(ctx, "user-1")
	_, ok = Get[[]string](ctx, c, "leaderboard:user-1", "user-1")
	assert.False(t, ok)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	val := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", val))
	val[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
