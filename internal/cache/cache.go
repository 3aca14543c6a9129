// Package cache implements the two-tier scratch cache used by the update
// pipeline: a request-scoped write buffer on top of a shared TTL cache.
//
// Writes performed while an event is being handled land in the buffer only.
// They become visible to other events exclusively through Flush, which the
// dispatcher calls after a successful transaction commit; on rollback the
// dispatcher calls Clear instead and the buffered writes are discarded. This
// keeps cache visibility strictly aligned with transaction outcome, so a
// rolled-back turn can never poison shared state that concurrent turns or
// redeliveries might read.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Shared is the process-wide TTL tier backing every scratch buffer.
// It is safe for concurrent use.
type Shared struct {
	backing *gocache.Cache
}

// NewShared constructs the shared tier. Entries written without an explicit
// TTL expire after defaultTTL; expired entries are purged every
// cleanupInterval.
func NewShared(defaultTTL, cleanupInterval time.Duration) *Shared {
	return &Shared{backing: gocache.New(defaultTTL, cleanupInterval)}
}

// TryGet reads directly from the shared tier.
func (s *Shared) TryGet(key string) (any, bool) {
	return s.backing.Get(key)
}

type bufferedEntry struct {
	value any
	ttl   time.Duration
}

// Scratch is the request-scoped buffer for one event. It is created by the
// dispatcher per event and passed down the handler call chain; instances are
// never shared between events, so Scratch needs no internal locking.
type Scratch struct {
	shared *Shared
	buffer map[string]bufferedEntry
}

// NewScratch constructs an empty buffer over the given shared tier.
func NewScratch(shared *Shared) *Scratch {
	return &Scratch{
		shared: shared,
		buffer: make(map[string]bufferedEntry),
	}
}

// Set writes to the buffer only. A ttl of zero means "use the shared tier's
// default expiration" when the entry is flushed. The shared tier is never
// touched here.
func (s *Scratch) Set(key string, value any, ttl time.Duration) {
	s.buffer[key] = bufferedEntry{value: value, ttl: ttl}
}

// TryGet checks the buffer first, then falls through to the shared tier.
func (s *Scratch) TryGet(key string) (any, bool) {
	if entry, ok := s.buffer[key]; ok {
		return entry.value, true
	}
	return s.shared.TryGet(key)
}

// Get returns the value for key, or nil when the key is absent in both tiers.
func (s *Scratch) Get(key string) any {
	value, _ := s.TryGet(key)
	return value
}

// Flush copies every buffered entry into the shared tier and empties the
// buffer. The dispatcher calls this only after a successful commit.
func (s *Scratch) Flush() {
	for key, entry := range s.buffer {
		ttl := entry.ttl
		if ttl == 0 {
			ttl = gocache.DefaultExpiration
		}
		s.shared.backing.Set(key, entry.value, ttl)
	}

	s.buffer = make(map[string]bufferedEntry)
}

// Clear discards the buffer without touching the shared tier. The dispatcher
// calls this on rollback.
func (s *Scratch) Clear() {
	s.buffer = make(map[string]bufferedEntry)
}
