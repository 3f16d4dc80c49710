package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name string `json:"name"`
	Goal int    `json:"goal"`
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestCache(t *testing.T, store Store) (*Cache, *fakeClock) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return New(store, "test_cache:", logger, WithClock(clock.Now)), clock
}

// failingStore fails every operation
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk full")
}
func (failingStore) Set(context.Context, string, []byte) error { return errors.New("disk full") }
func (failingStore) Delete(context.Context, string) error { return errors.New("disk full") }
func (failingStore) Keys(context.Context, string) ([]string, error) {
	return nil, errors.New("disk full")
}

func TestCache_SetThenGet(t *testing.T) {
	c, _ := newTestCache(t, NewMemoryStore())
	ctx := context.Background()

	Set(ctx, c, "profile", profile{Name: "Ann", Goal: 8000}, "user-1")
	got, ok := Get[profile](ctx, c, "profile", "user-1")

	require.True(t, ok)
	assert.Equal(t, profile{Name: "Ann", Goal: 8000}, got)
}

func TestCache_MissingKey(t *testing.T) {
	c, _ := newTestCache(t, NewMemoryStore())

	_, ok := Get[profile](context.Background(), c, "profile", "user-1")

	assert.False(t, ok)
}

func TestCache_UserMismatchEvicts(t *testing.T) {
	store := NewMemoryStore()
	c, _ := newTestCache(t, store)
	ctx := context.Background()

	Set(ctx, c, "profile", profile{Name: "Ann"}, "user-1")
	_, ok := Get[profile](ctx, c, "profile", "user-2")
	assert.False(t, ok)

	_, err := store.Get(ctx, "test_cache:profile")
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok = Get[profile](ctx, c, "profile", "user-1")
	assert.False(t, ok)
}

func TestCache_ExpiryBoundary(t *testing.T) {
	store := NewMemoryStore()
	c, clock := newTestCache(t, store)
	ctx := context.Background()

	Set(ctx, c, "steps", 1234, "user-1")

	clock.t = clock.t.Add(24 * time.Hour)
	got, ok := Get[int](ctx, c, "steps", "user-1")
	require.True(t, ok)
	assert.Equal(t, 1234, got)

	clock.t = clock.t.Add(time.Millisecond)
	_, ok = Get[int](ctx, c, "steps", "user-1")
	assert.False(t, ok)

	_, err := store.Get(ctx, "test_cache:steps")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCache_SetOverwrites(t *testing.T) {
	c, clock := newTestCache(t, NewMemoryStore())
	ctx := context.Background()

	Set(ctx, c, "steps", 1, "user-1")
	clock.t = clock.t.Add(23 * time.Hour)
	Set(ctx, c, "steps", 2, "user-2")
	clock.t = clock.t.Add(23 * time.Hour)

	got, ok := Get[int](ctx, c, "steps", "user-2")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestCache_UndecodableEntryEvicts(t *testing.T) {
	store := NewMemoryStore()
	c, _ := newTestCache(t, store)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "test_cache:profile", []byte("{not json")))

	_, ok := Get[profile](ctx, c, "profile", "user-1")

	assert.False(t, ok)
	keys, _ := store.Keys(ctx, "test_cache:")
	assert.Empty(t, keys)
}

func TestCache_ClearForUserKeepsOthers(t *testing.T) {
	store := NewMemoryStore()
	c, _ := newTestCache(t, store)
	ctx := context.Background()

	Set(ctx, c, "profile:user-1", profile{Name: "Ann"}, "user-1")
	Set(ctx, c, "streak:user-1", 3, "user-1")
	Set(ctx, c, "profile:user-2", profile{Name: "Bob"}, "user-2")
	require.NoError(t, store.Set(ctx, "other_app:key", []byte("x")))

	c.Clear(ctx, "user-1")

	_, ok := Get[profile](ctx, c, "profile:user-1", "user-1")
	assert.False(t, ok)
	_, ok = Get[int](ctx, c, "streak:user-1", "user-1")
	assert.False(t, ok)
	got, ok := Get[profile](ctx, c, "profile:user-2", "user-2")
	require.True(t, ok)
	assert.Equal(t, "Bob", got.Name)

	_, err := store.Get(ctx, "other_app:key")
	assert.NoError(t, err)
}

func TestCache_ClearAll(t *testing.T) {
	store := NewMemoryStore()
	c, _ := newTestCache(t, store)
	ctx := context.Background()

	Set(ctx, c, "a", 1, "user-1")
	Set(ctx, c, "b", 2, "user-2")

	c.Clear(ctx, "")

	keys, err := store.Keys(ctx, "test_cache:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t, NewMemoryStore())
	ctx := context.Background()

	Set(ctx, c, "a", 1, "user-1")
	Set(ctx, c, "b", 2, "user-1")
	c.Delete(ctx, "a", "b")

	_, okA := Get[int](ctx, c, "a", "user-1")
	_, okB := Get[int](ctx, c, "b", "user-1")
	assert.False(t, okA)
	assert.False(t, okB)
}

func TestCache_StoreFailuresDegradeToMiss(t *testing.T) {
	c, _ := newTestCache(t, failingStore{})
	ctx := context.Background()

	assert.NotPanics(t, func() {
		Set(ctx, c, "profile", profile{Name: "Ann"}, "user-1")
		c.Clear(ctx, "user-1")
		c.Delete(ctx, "profile")
	})

	_, ok := Get[profile](ctx, c, "profile", "user-1")
	assert.False(t, ok)
}

func TestWithTTL_IgnoresNonPositive(t *testing.T) {
	c := New(NewMemoryStore(), "p:", logrus.New(), WithTTL(0))
	assert.Equal(t, DefaultTTL, c.ttl)

	c = New(NewMemoryStore(), "p:", logrus.New(), WithTTL(time.Minute))
	assert.Equal(t, time.Minute, c.ttl)
}
