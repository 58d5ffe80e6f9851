// Package schema has configs, models and shared types for all parts of tempograph.
package schema

import "time"

// Truthy is implemented by wrapper values whose raw form carries an
// on/off state alongside a printable form (e.g. checkbox properties).
type Truthy interface {
	IsTruthy() bool
	String() string
}

// DateAnchor is the canonical timestamp attributed to an entry, together
// with the ranked source that produced it. Anchors are immutable once
// resolved for a render cycle.
type DateAnchor struct {
	Date     time.Time    `json:"date"`
	Source   AnchorSource `json:"source"`
	Priority int          `json:"priority"` // lower wins when multiple sources resolve
}

// DataPoint carries everything the aggregation functions need about one
// (entry, property) pair. It is built once per render cycle and never mutated.
type DataPoint struct {
	EntryPath string      `json:"entryPath"`
	EntryName string      `json:"entryName"`
	Anchor    *DateAnchor `json:"anchor,omitempty"` // nil when no source resolved
	Raw       any         `json:"-"`
	Numeric   *float64    `json:"numeric,omitempty"` // nil when the value is not numeric
	Label     string      `json:"label"`             // empty when the value is not displayable
	Tags      []string    `json:"tags,omitempty"`    // list items for list-shaped values
}

// HasAnchor reports whether a date anchor was resolved for the point.
func (p DataPoint) HasAnchor() bool {
	return p.Anchor != nil
}

// CacheStatus holds status information about a durable cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int64     `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}
