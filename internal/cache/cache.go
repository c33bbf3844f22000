// Package cache keeps the parsed vocabulary in memory and reloads it from its
// source once the configured time-to-live has passed.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/hangeul-backend/internal/domain"
)

// source is the data the cache is filled from.
type source interface {
	Load() ([]domain.RawEntry, error)
}

// snapshot is published whole and never mutated afterwards.
type snapshot struct {
	entries     []domain.RawEntry
	refreshedAt time.Time
}

// Cache memoizes the result of source.Load for ttl. Reads that find the data
// absent or older than ttl reload it synchronously. A failed reload keeps the
// previous snapshot, so callers never see an error.
type Cache struct {
	log *slog.Logger
	src source
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	snap *snapshot
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty Cache. Nothing is loaded until the first read.
func New(logger *slog.Logger, src source, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		log: logger.With("component", "cache"),
		src: src,
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Entries returns the current entries, reloading them first when stale.
// The returned slice is shared and must not be modified.
func (c *Cache) Entries(ctx context.Context) []domain.RawEntry {
	return c.RefreshIfStale(ctx, c.now())
}

// RefreshIfStale reloads the data when nothing has been loaded yet or when
// more than ttl has passed between the last refresh and now, then returns
// the entries held afterwards.
//
// If the reload fails the last good entries are kept (and returned) and the
// next attempt waits another ttl. With no good entries at all the result is
// empty and the next read tries again.
func (c *Cache) RefreshIfStale(ctx context.Context, now time.Time) []domain.RawEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil && now.Sub(c.snap.refreshedAt) <= c.ttl {
		return c.snap.entries
	}

	start := time.Now()
	entries, err := c.src.Load()
	if err != nil {
		c.log.ErrorContext(ctx, "load korean data", slog.String("error", err.Error()))
		if c.snap == nil {
			return []domain.RawEntry{}
		}
		c.snap = &snapshot{entries: c.snap.entries, refreshedAt: now}
		return c.snap.entries
	}
	if entries == nil {
		entries = []domain.RawEntry{}
	}

	c.snap = &snapshot{entries: entries, refreshedAt: now}
	c.log.InfoContext(ctx, "korean data cache refreshed",
		slog.Int("entries", len(entries)),
		slog.Duration("duration", time.Since(start)),
	)

	return c.snap.entries
}

// LastRefresh reports when the held entries were last (re)loaded.
func (c *Cache) LastRefresh() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap == nil {
		return time.Time{}, false
	}
	return c.snap.refreshedAt, true
}
