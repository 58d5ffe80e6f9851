package core

import (
	"github.com/tempograph/tempograph/schema"
)

// ChartSignature captures the shape-affecting settings of one configured
// visualization.
type ChartSignature struct {
	Kind        schema.ChartKind
	Granularity schema.Granularity
	ShowEmpty   bool
}

// StructuralSignature maps each configured property ID to the signatures
// of its visualizations, in configuration order.
type StructuralSignature map[string][]ChartSignature

// CanIncrementallyUpdate reports whether a cheap in-place data refresh
// suffices instead of a full rebuild. Allowed only when at least one
// visualization already exists, the set of configured property IDs is
// unchanged, and every property keeps the same visualization count with
// the same kind and settings per position. Any violation forces a full
// rebuild; the incremental path never changes an aggregate's shape.
func CanIncrementallyUpdate(previous, current StructuralSignature) bool {
	if countCharts(previous) == 0 {
		return false
	}
	if len(previous) != len(current) {
		return false
	}
	for propertyID, prevCharts := range previous {
		curCharts, ok := current[propertyID]
		if !ok {
			return false
		}
		if len(prevCharts) != len(curCharts) {
			return false
		}
		for i := range prevCharts {
			if prevCharts[i] != curCharts[i] {
				return false
			}
		}
	}
	return true
}

// countCharts totals the visualizations across all properties.
func countCharts(sig StructuralSignature) int {
	total := 0
	for _, charts := range sig {
		total += len(charts)
	}
	return total
}
