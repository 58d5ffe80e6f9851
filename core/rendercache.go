package core

import (
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// RenderCache memoizes resolved anchors and per-property data points for
// one render cycle. The host may hand back semantically identical entries
// as new objects between updates; StartCycle detects that by comparing an
// identity snapshot keyed by stable entry path and invalidates everything
// when any entry was replaced, even at an unchanged count. A stale cache
// here surfaces as wrong data, not a crash, so invalidation discipline is
// the whole contract. One cache instance serves one rendering context;
// concurrent cycles must not share an instance.
type RenderCache struct {
	snapshot   map[string]contract.Entry
	anchors    map[string]*schema.DateAnchor
	dataPoints map[string][]schema.DataPoint
}

// NewRenderCache returns an empty cache.
func NewRenderCache() *RenderCache {
	return &RenderCache{
		snapshot:   map[string]contract.Entry{},
		dataPoints: map[string][]schema.DataPoint{},
	}
}

// StartCycle begins a render cycle over the given entries. It reports
// whether the previous cycle's caches were kept: true when every entry is
// the same object under the same path as last cycle, false when anything
// was added, removed or replaced (in which case all caches are dropped).
func (c *RenderCache) StartCycle(entries []contract.Entry) bool {
	next := make(map[string]contract.Entry, len(entries))
	for _, e := range entries {
		next[e.Path()] = e
	}

	if sameIdentity(c.snapshot, next) {
		return true
	}
	c.ClearAll()
	c.snapshot = next
	return false
}

// GetAnchors returns the cached anchor map, or nil when unset this cycle.
func (c *RenderCache) GetAnchors() map[string]*schema.DateAnchor {
	return c.anchors
}

// SetAnchors caches the anchor map for the current cycle.
func (c *RenderCache) SetAnchors(anchors map[string]*schema.DateAnchor) {
	c.anchors = anchors
}

// GetDataPoints returns the cached points for a property and whether any
// were cached this cycle.
func (c *RenderCache) GetDataPoints(propertyID string) ([]schema.DataPoint, bool) {
	points, ok := c.dataPoints[propertyID]
	return points, ok
}

// SetDataPoints caches the points for a property for the current cycle.
func (c *RenderCache) SetDataPoints(propertyID string, points []schema.DataPoint) {
	c.dataPoints[propertyID] = points
}

// ClearAll drops the anchor cache, every per-property cache and the
// identity snapshot.
func (c *RenderCache) ClearAll() {
	c.snapshot = map[string]contract.Entry{}
	c.anchors = nil
	c.dataPoints = map[string][]schema.DataPoint{}
}

// sameIdentity reports whether two snapshots hold the same entry objects
// under the same paths.
func sameIdentity(prev, next map[string]contract.Entry) bool {
	if len(prev) != len(next) {
		return false
	}
	for path, e := range next {
		if prev[path] != e {
			return false
		}
	}
	return true
}
