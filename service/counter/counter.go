package counter

import (
	"github.com/hitbadge/hitbadge/platform/service"
)

// CountUnseen is returned by Peek for keys that were never incremented.
const CountUnseen uint64 = 0

// Service is the counting core tracking one monotonically increasing count
// per key.
type Service interface {
	// Increment raises the count for key by one and returns the new value.
	// The first increment of an unseen key returns 1.
	Increment(key string) (uint64, error)
	// Peek returns the current count without mutating it, CountUnseen if the
	// key was never incremented.
	Peek(key string) (uint64, error)
	// Flush persists all outstanding counts to the backing store.
	Flush() error
	// Close stops background persistence and flushes outstanding counts.
	Close() error
}

// ServiceMiddleware is a chainable behaviour modifier for Service.
type ServiceMiddleware func(Service) Service

// Store is durable key→count storage underneath the counting cache.
type Store interface {
	service.Lifecycle

	// Load returns the last persisted count for key, ErrKeyNotFound if the
	// key was never stored.
	Load(key string) (uint64, error)
	// Put persists count for key. Writes are idempotent and an older count
	// must never overwrite a newer one.
	Put(key string, count uint64) error
}
