package core

import (
	"github.com/tempograph/tempograph/schema"
)

// HeatmapOptions configures heatmap aggregation.
type HeatmapOptions struct {
	// ShowEmpty synthesizes zero-count, null-value cells for every bucket
	// between the first and last occupied bucket, so the grid has no gaps.
	ShowEmpty bool
}

// AggregateHeatmap buckets anchored points and averages their numeric
// values per bucket. A bucket whose entries carry no numeric values gets a
// nil value but keeps its entry count. MinValue/MaxValue default to [0, 1]
// when no numeric data exists so color-scale math never divides by zero.
func AggregateHeatmap(points []schema.DataPoint, propertyID, displayName string, g schema.Granularity, opts HeatmapOptions) (schema.HeatmapData, error) {
	data := schema.HeatmapData{
		PropertyID:  propertyID,
		DisplayName: displayName,
		Granularity: g,
		Cells:       []schema.HeatmapCell{},
		MinValue:    0,
		MaxValue:    1,
	}

	buckets, err := bucketPoints(points, g)
	if err != nil {
		return schema.HeatmapData{}, err
	}
	if len(buckets) == 0 {
		return data, nil
	}

	byKey := make(map[string]*timeBucket, len(buckets))
	for _, b := range buckets {
		byKey[b.key] = b
	}

	if opts.ShowEmpty {
		data.Cells, err = synthesizeCells(buckets, byKey, g)
		if err != nil {
			return schema.HeatmapData{}, err
		}
	} else {
		for _, b := range buckets {
			data.Cells = append(data.Cells, occupiedCell(b))
		}
	}

	data.MinDate = data.Cells[0].Date
	data.MaxDate = data.Cells[len(data.Cells)-1].Date
	applyValueRange(&data)
	return data, nil
}

// synthesizeCells enumerates every bucket between the first and last
// occupied bucket inclusive, emitting placeholder cells where no entries
// exist.
func synthesizeCells(buckets []*timeBucket, byKey map[string]*timeBucket, g schema.Granularity) ([]schema.HeatmapCell, error) {
	first := buckets[0].start
	last := buckets[len(buckets)-1].start

	cells := []schema.HeatmapCell{}
	for cursor := first; !cursor.After(last); {
		key, err := BucketKey(cursor, g)
		if err != nil {
			return nil, err
		}
		if b, ok := byKey[key]; ok {
			cells = append(cells, occupiedCell(b))
		} else {
			cells = append(cells, schema.HeatmapCell{Date: cursor, Key: key, Entries: []string{}})
		}
		cursor, err = Advance(cursor, g, 1)
		if err != nil {
			return nil, err
		}
	}
	return cells, nil
}

// occupiedCell converts an accumulated bucket into a heatmap cell.
func occupiedCell(b *timeBucket) schema.HeatmapCell {
	return schema.HeatmapCell{
		Date:    b.start,
		Key:     b.key,
		Value:   b.mean(),
		Count:   b.entryCount,
		Entries: b.entries,
	}
}

// applyValueRange computes MinValue/MaxValue over non-nil cell values,
// leaving the [0, 1] default in place when none exist.
func applyValueRange(data *schema.HeatmapData) {
	seen := false
	for _, cell := range data.Cells {
		if cell.Value == nil {
			continue
		}
		if !seen {
			data.MinValue, data.MaxValue = *cell.Value, *cell.Value
			seen = true
			continue
		}
		if *cell.Value < data.MinValue {
			data.MinValue = *cell.Value
		}
		if *cell.Value > data.MaxValue {
			data.MaxValue = *cell.Value
		}
	}
}
