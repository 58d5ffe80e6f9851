package core

import (
	"sort"
	"time"

	"github.com/tempograph/tempograph/schema"
)

// AggregateTimeline emits one point per anchored entry, carrying the
// derived display label (empty string, never null, when absent) and the
// numeric value when one exists. Points are sorted ascending by date;
// MinDate/MaxDate come from the first and last point and default to the
// current time when no points exist, so the shape is never undefined.
func AggregateTimeline(points []schema.DataPoint, propertyID, displayName string) schema.TimelineData {
	data := schema.TimelineData{
		PropertyID:  propertyID,
		DisplayName: displayName,
		Points:      []schema.TimelinePoint{},
	}
	for _, p := range points {
		if !p.HasAnchor() {
			continue
		}
		data.Points = append(data.Points, schema.TimelinePoint{
			Date:    p.Anchor.Date,
			Label:   p.Label,
			Value:   p.Numeric,
			Entries: []string{p.EntryPath},
		})
	}
	sort.SliceStable(data.Points, func(i, j int) bool {
		return data.Points[i].Date.Before(data.Points[j].Date)
	})

	if len(data.Points) == 0 {
		now := time.Now()
		data.MinDate, data.MaxDate = now, now
		return data
	}
	data.MinDate = data.Points[0].Date
	data.MaxDate = data.Points[len(data.Points)-1].Date
	return data
}
