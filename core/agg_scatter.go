package core

import (
	"sort"

	"github.com/tempograph/tempograph/schema"
)

// AggregateScatter places every point carrying both a date anchor and a
// numeric value on a time axis normalized to [0, 100]. Y is the raw
// numeric value, unscaled. When all points share one instant the time
// range is treated as 1 so normalization never divides by zero.
func AggregateScatter(points []schema.DataPoint, propertyID, displayName string) schema.ScatterChartData {
	eligible := []schema.DataPoint{}
	for _, p := range points {
		if p.HasAnchor() && p.Numeric != nil {
			eligible = append(eligible, p)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Anchor.Date.Before(eligible[j].Anchor.Date)
	})

	data := schema.ScatterChartData{
		PropertyID:  propertyID,
		DisplayName: displayName,
		Points:      []schema.ScatterPoint{},
	}
	if len(eligible) == 0 {
		return data
	}

	minT := eligible[0].Anchor.Date.UnixMilli()
	maxT := eligible[len(eligible)-1].Anchor.Date.UnixMilli()
	span := float64(maxT - minT)
	if span == 0 {
		span = 1
	}
	for _, p := range eligible {
		data.Points = append(data.Points, schema.ScatterPoint{
			X:       float64(p.Anchor.Date.UnixMilli()-minT) / span * 100,
			Y:       *p.Numeric,
			Entries: []string{p.EntryPath},
		})
	}
	return data
}
