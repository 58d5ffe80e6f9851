package core

import (
	"github.com/tempograph/tempograph/schema"
)

// AggregateSeries buckets anchored points and emits one dataset value per
// bucket: the arithmetic mean of its numeric values. Buckets with zero
// numeric points are dropped entirely, so labels and values stay aligned
// with no placeholders.
func AggregateSeries(points []schema.DataPoint, propertyID, displayName string, g schema.Granularity) (schema.ChartData, error) {
	buckets, err := bucketPoints(points, g)
	if err != nil {
		return schema.ChartData{}, err
	}

	dataset := schema.ChartDataset{
		Label:   displayName,
		Values:  []float64{},
		Entries: [][]string{},
	}
	labels := []string{}
	for _, b := range buckets {
		mean := b.mean()
		if mean == nil {
			continue
		}
		labels = append(labels, b.key)
		dataset.Values = append(dataset.Values, *mean)
		dataset.Entries = append(dataset.Entries, b.entries)
	}

	return schema.ChartData{
		PropertyID:  propertyID,
		Granularity: g,
		Labels:      labels,
		Datasets:    []schema.ChartDataset{dataset},
	}, nil
}
