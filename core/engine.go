package core

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strconv"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// Engine ties an entry source to a RenderCache. Long-lived callers (the
// MCP server, embedders re-rendering on every property edit) hold one
// Engine per rendering context and get anchor/data-point reuse for free
// whenever the underlying entries have not been replaced.
type Engine struct {
	source contract.EntrySource
	cache  *RenderCache
	anchor AnchorOptions
}

// NewEngine returns an engine with an empty cache.
func NewEngine(source contract.EntrySource, anchor AnchorOptions) *Engine {
	return &Engine{source: source, cache: NewRenderCache(), anchor: anchor}
}

// DataPoints loads the current entries, starts a render cycle and returns
// the data points for one property plus a content stamp identifying the
// loaded collection state. Anchors and per-property points are recomputed
// only when the cycle invalidated the cache or the property is new.
func (e *Engine) DataPoints(propertyID string, opts ExtractOptions) ([]schema.DataPoint, string, error) {
	entries, err := e.source.Entries()
	if err != nil {
		return nil, "", fmt.Errorf("cannot load entries: %w", err)
	}
	e.cache.StartCycle(entries)

	anchors := e.cache.GetAnchors()
	if anchors == nil {
		anchors = ResolveAnchors(entries, e.anchor)
		e.cache.SetAnchors(anchors)
	}

	points, ok := e.cache.GetDataPoints(propertyID)
	if !ok {
		points = BuildDataPoints(entries, anchors, propertyID, opts)
		e.cache.SetDataPoints(propertyID, points)
	}
	return points, collectionStamp(entries), nil
}

// collectionStamp hashes the paths and metadata timestamps of a loaded
// collection. Two loads with identical stamps saw the same files in the
// same states, which is what the durable cache keys on.
func collectionStamp(entries []contract.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Path()+"|"+strconv.FormatInt(e.CreatedAt().UnixNano(), 10))
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
