// Package contract provides interfaces and shared utilities for tempograph's internal architecture.
package contract

import (
	"time"

	"github.com/tempograph/tempograph/schema"
)

// Entry is one opaque document in the host collection. Implementations
// must be comparable (pointer types) because the render cache tracks
// identity replacement across cycles. The host may hand back a brand-new
// Entry for the same logical document between cycles; Path is the stable
// logical identifier in that case.
type Entry interface {
	// Path returns the stable path identifying the logical document.
	Path() string

	// Name returns the display name (filename without extension).
	Name() string

	// Property returns the raw value for the given property ID, or nil
	// when the entry does not carry it.
	Property(id string) any

	// CreatedAt returns the file metadata creation time, the lowest
	// ranked date anchor source.
	CreatedAt() time.Time
}

// EntrySource supplies an ordered, read-only collection of entries.
type EntrySource interface {
	Entries() ([]Entry, error)
}

// Property pairs a property ID with its human display name.
type Property struct {
	ID          string
	DisplayName string
}

// PropertyCatalog supplies the property IDs currently of interest.
type PropertyCatalog interface {
	Properties() []Property
}

// CacheManager defines the interface for managing durable cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetAggregateStore() CacheStore
}

// CacheStore defines the interface for durable cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
