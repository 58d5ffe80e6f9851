package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

func fakeEntries() []contract.Entry {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []contract.Entry{
		&contract.FakeEntry{FilePath: "a.md", Created: created},
		&contract.FakeEntry{FilePath: "b.md", Created: created},
	}
}

func TestRenderCacheReusedAcrossCycles(t *testing.T) {
	cache := NewRenderCache()
	entries := fakeEntries()

	assert.False(t, cache.StartCycle(entries)) // first cycle is always cold

	anchors := map[string]*schema.DateAnchor{"a.md": nil}
	cache.SetAnchors(anchors)
	cache.SetDataPoints("words", []schema.DataPoint{{EntryPath: "a.md"}})

	// Same entry objects: caches survive.
	assert.True(t, cache.StartCycle(entries))
	assert.NotNil(t, cache.GetAnchors())
	points, ok := cache.GetDataPoints("words")
	assert.True(t, ok)
	assert.Len(t, points, 1)
}

func TestRenderCacheInvalidatedOnReplacement(t *testing.T) {
	cache := NewRenderCache()
	entries := fakeEntries()

	cache.StartCycle(entries)
	cache.SetAnchors(map[string]*schema.DateAnchor{})
	cache.SetDataPoints("words", []schema.DataPoint{})

	// One entry replaced by an equivalent new object at an unchanged count.
	replaced := []contract.Entry{
		entries[0],
		&contract.FakeEntry{FilePath: "b.md", Created: entries[1].CreatedAt()},
	}
	assert.False(t, cache.StartCycle(replaced))

	assert.Nil(t, cache.GetAnchors())
	_, ok := cache.GetDataPoints("words")
	assert.False(t, ok)
}

func TestRenderCacheInvalidatedOnAddRemove(t *testing.T) {
	cache := NewRenderCache()
	entries := fakeEntries()

	cache.StartCycle(entries)
	assert.False(t, cache.StartCycle(entries[:1])) // removal
	assert.False(t, cache.StartCycle(entries))     // addition
}

func TestRenderCacheClearAll(t *testing.T) {
	cache := NewRenderCache()
	entries := fakeEntries()

	cache.StartCycle(entries)
	cache.SetAnchors(map[string]*schema.DateAnchor{})
	cache.SetDataPoints("words", []schema.DataPoint{})

	cache.ClearAll()

	assert.Nil(t, cache.GetAnchors())
	_, ok := cache.GetDataPoints("words")
	require.False(t, ok)
	// The snapshot is gone too, so the next cycle is cold.
	assert.False(t, cache.StartCycle(entries))
}
