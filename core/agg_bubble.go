package core

import (
	"github.com/tempograph/tempograph/schema"
)

// Bubble radius domain, proportional to bucket density.
const (
	bubbleRadiusBase = 5.0
	bubbleRadiusSpan = 25.0
)

// AggregateBubble buckets anchored points like a time-series and emits one
// bubble per bucket with numeric data: x is the bucket's normalized time
// position in [0, 100], y the mean numeric value, and the radius grows
// from 5 to 30 with the bucket's share of the densest bucket.
func AggregateBubble(points []schema.DataPoint, propertyID, displayName string, g schema.Granularity) (schema.BubbleChartData, error) {
	buckets, err := bucketPoints(points, g)
	if err != nil {
		return schema.BubbleChartData{}, err
	}

	kept := []*timeBucket{}
	maxCount := 0
	for _, b := range buckets {
		if b.numeric == 0 {
			continue
		}
		kept = append(kept, b)
		if b.entryCount > maxCount {
			maxCount = b.entryCount
		}
	}

	data := schema.BubbleChartData{
		PropertyID:  propertyID,
		DisplayName: displayName,
		Granularity: g,
		Points:      []schema.BubblePoint{},
	}
	if len(kept) == 0 {
		return data, nil
	}

	minT := kept[0].start.UnixMilli()
	maxT := kept[len(kept)-1].start.UnixMilli()
	span := float64(maxT - minT)
	if span == 0 {
		span = 1
	}
	for _, b := range kept {
		data.Points = append(data.Points, schema.BubblePoint{
			X:       float64(b.start.UnixMilli()-minT) / span * 100,
			Y:       *b.mean(),
			R:       bubbleRadiusBase + float64(b.entryCount)/float64(maxCount)*bubbleRadiusSpan,
			Count:   b.entryCount,
			Entries: b.entries,
		})
	}
	return data, nil
}
