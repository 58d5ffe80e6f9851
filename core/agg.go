package core

import (
	"sort"
	"time"

	"github.com/tempograph/tempograph/schema"
)

// timeBucket accumulates the data points that share one calendar period.
type timeBucket struct {
	key        string
	start      time.Time
	sum        float64
	numeric    int // points that carried a numeric value
	entries    []string
	entryCount int
}

// mean returns the arithmetic mean of the bucket's numeric values, or nil
// when the bucket holds no numeric points.
func (b *timeBucket) mean() *float64 {
	if b.numeric == 0 {
		return nil
	}
	m := b.sum / float64(b.numeric)
	return &m
}

// bucketPoints groups anchored points into calendar buckets at the given
// granularity, sorted ascending by bucket start. Points without a date
// anchor are excluded; they are valid input, not an error.
func bucketPoints(points []schema.DataPoint, g schema.Granularity) ([]*timeBucket, error) {
	byKey := make(map[string]*timeBucket)
	for _, p := range points {
		if !p.HasAnchor() {
			continue
		}
		key, err := BucketKey(p.Anchor.Date, g)
		if err != nil {
			return nil, err
		}
		b, ok := byKey[key]
		if !ok {
			start, err := BucketStart(p.Anchor.Date, g)
			if err != nil {
				return nil, err
			}
			b = &timeBucket{key: key, start: start}
			byKey[key] = b
		}
		b.entries = append(b.entries, p.EntryPath)
		b.entryCount++
		if p.Numeric != nil {
			b.sum += *p.Numeric
			b.numeric++
		}
	}

	buckets := make([]*timeBucket, 0, len(byKey))
	for _, b := range byKey {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].start.Before(buckets[j].start)
	})
	return buckets, nil
}
