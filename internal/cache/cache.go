// Package cache is a TTL-bound, user-scoped key/value cache.
//
// Every entry carries its write time and the id of the user it belongs to.
// Reads delete entries that are expired, owned by another user or cannot be
// decoded. Storage failures are logged and reported as misses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTTL is the maximum age of an entry
const DefaultTTL = 24 * time.Hour

// Entry wraps a cached payload with its write time (unix ms) and owner
type Entry[T any] struct {
	Data      T      `json:"data"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"userId"`
}

type Cache struct {
	store  Store
	prefix string
	ttl    time.Duration
	now    func() time.Time
	logger *logrus.Logger
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(store Store, prefix string, logger *logrus.Logger, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		prefix: prefix,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the payload stored under key when it is fresh and owned by userID.
func Get[T any](ctx context.Context, c *Cache, key, userID string) (T, bool) {
	var zero T
	log := c.logger.WithFields(logrus.Fields{"component": "cache", "key": key})

	raw, err := c.store.Get(ctx, c.prefix+key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Warn("Cache read failed, treating as miss")
		}
		return zero, false
	}

	var entry Entry[T]
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.WithError(err).Warn("Undecodable cache entry, evicting")
		c.evict(ctx, key)
		return zero, false
	}

	if entry.UserID != userID {
		log.Debug("Cache entry belongs to another user, evicting")
		c.evict(ctx, key)
		return zero, false
	}

	age := c.now().Sub(time.UnixMilli(entry.Timestamp))
	if age > c.ttl {
		log.WithField("age", age.String()).Debug("Cache entry expired, evicting")
		c.evict(ctx, key)
		return zero, false
	}

	return entry.Data, true
}

// Set overwrites key with value owned by userID.
func Set[T any](ctx context.Context, c *Cache, key string, value T, userID string) {
	entry := Entry[T]{
		Data:      value,
		Timestamp: c.now().UnixMilli(),
		UserID:    userID,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to encode cache entry")
		return
	}
	if err := c.store.Set(ctx, c.prefix+key, raw); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// Delete removes key regardless of its owner.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.evict(ctx, key)
	}
}

// Clear removes every entry under the cache prefix. With a non-empty userID
// only that user's entries are removed; entries of other users are kept.
func (c *Cache) Clear(ctx context.Context, userID string) {
	log := c.logger.WithFields(logrus.Fields{"component": "cache", "method": "Clear", "user_id": userID})

	keys, err := c.store.Keys(ctx, c.prefix)
	if err != nil {
		log.WithError(err).Warn("Failed to list cache keys")
		return
	}

	removed := 0
	for _, fullKey := range keys {
		if userID != "" && !c.ownedBy(ctx, fullKey, userID) {
			continue
		}
		if err := c.store.Delete(ctx, fullKey); err != nil {
			log.WithError(err).WithField("key", fullKey).Warn("Failed to delete cache entry")
			continue
		}
		removed++
	}
	log.WithField("removed", removed).Debug("Cache cleared")
}

// ownedBy reports whether the entry under fullKey belongs to userID.
// Unreadable entries count as owned so that they are cleared.
func (c *Cache) ownedBy(ctx context.Context, fullKey, userID string) bool {
	raw, err := c.store.Get(ctx, fullKey)
	if err != nil {
		return false
	}
	var owner struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(raw, &owner); err != nil {
		return true
	}
	return owner.UserID == userID
}

func (c *Cache) evict(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, c.prefix+key); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to evict cache entry")
	}
}
