package core

import (
	"sort"
	"strings"

	"github.com/tempograph/tempograph/schema"
)

// PieOptions configures categorical aggregation.
type PieOptions struct {
	// CaseSensitive keeps "Running" and "running" as distinct categories.
	// Off by default: case-varied spellings collapse into one slice named
	// after the first occurrence.
	CaseSensitive bool
}

// AggregatePie groups points by display label and counts occurrences.
// Points whose value yields no label are silently skipped; an empty
// category label never appears in the output. Slices are sorted
// descending by count, ties broken by first-occurrence order.
func AggregatePie(points []schema.DataPoint, propertyID, displayName string, opts PieOptions) schema.PieChartData {
	type group struct {
		slice *schema.PieSlice
		order int
	}
	byKey := make(map[string]*group)
	slices := []*schema.PieSlice{}

	for _, p := range points {
		if p.Label == "" {
			continue
		}
		key := p.Label
		if !opts.CaseSensitive {
			key = strings.ToLower(key)
		}
		g, ok := byKey[key]
		if !ok {
			slice := &schema.PieSlice{Label: p.Label, Entries: []string{}}
			g = &group{slice: slice, order: len(slices)}
			byKey[key] = g
			slices = append(slices, slice)
		}
		g.slice.Count++
		g.slice.Entries = append(g.slice.Entries, p.EntryPath)
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Count > slices[j].Count
	})

	data := schema.PieChartData{
		PropertyID:  propertyID,
		DisplayName: displayName,
		Slices:      make([]schema.PieSlice, 0, len(slices)),
	}
	for _, s := range slices {
		data.Slices = append(data.Slices, *s)
		data.Total += s.Count
	}
	return data
}
