// Package parquet exports aggregate results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/tempograph/tempograph/schema"
)

// HeatmapCellRow is one heatmap cell flattened for Parquet export.
type HeatmapCellRow struct {
	PropertyID  string    `parquet:"property_id,snappy"`
	Granularity string    `parquet:"granularity,snappy"`
	BucketKey   string    `parquet:"bucket_key,snappy"`
	BucketDate  time.Time `parquet:"bucket_date,snappy"`

	// Value is the bucket mean; nil when the bucket has no numeric data
	Value *float64 `parquet:"value,optional,snappy"`

	EntryCount int32 `parquet:"entry_count,snappy"`

	// Entries holds the contributing entry paths, pipe-separated
	Entries string `parquet:"entries,snappy"`
}

// SeriesPointRow is one time-series position flattened for Parquet export.
type SeriesPointRow struct {
	PropertyID  string  `parquet:"property_id,snappy"`
	Granularity string  `parquet:"granularity,snappy"`
	Dataset     string  `parquet:"dataset,snappy"`
	BucketKey   string  `parquet:"bucket_key,snappy"`
	Value       float64 `parquet:"value,snappy"`
	Entries     string  `parquet:"entries,snappy"`
}

// PieSliceRow is one category flattened for Parquet export.
type PieSliceRow struct {
	PropertyID string `parquet:"property_id,snappy"`
	Label      string `parquet:"label,snappy"`
	Count      int32  `parquet:"count,snappy"`
	Entries    string `parquet:"entries,snappy"`
}

// ScatterPointRow is one scatter point flattened for Parquet export.
type ScatterPointRow struct {
	PropertyID string  `parquet:"property_id,snappy"`
	X          float64 `parquet:"x,snappy"`
	Y          float64 `parquet:"y,snappy"`
	Entries    string  `parquet:"entries,snappy"`
}

// BubblePointRow is one bubble flattened for Parquet export.
type BubblePointRow struct {
	PropertyID  string  `parquet:"property_id,snappy"`
	Granularity string  `parquet:"granularity,snappy"`
	X           float64 `parquet:"x,snappy"`
	Y           float64 `parquet:"y,snappy"`
	R           float64 `parquet:"r,snappy"`
	Count       int32   `parquet:"count,snappy"`
	Entries     string  `parquet:"entries,snappy"`
}

// TagCountRow is one tag flattened for Parquet export.
type TagCountRow struct {
	PropertyID string `parquet:"property_id,snappy"`
	Tag        string `parquet:"tag,snappy"`
	Frequency  int32  `parquet:"frequency,snappy"`
	Entries    string `parquet:"entries,snappy"`
}

// TimelinePointRow is one timeline point flattened for Parquet export.
type TimelinePointRow struct {
	PropertyID string    `parquet:"property_id,snappy"`
	Date       time.Time `parquet:"date,snappy"`
	Label      string    `parquet:"label,snappy"`
	Value      *float64  `parquet:"value,optional,snappy"`
	Entries    string    `parquet:"entries,snappy"`
}

// WriteRows writes a slice of row structs to a Parquet file. The schema
// is inferred from the struct tags of T.
func WriteRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertHeatmap flattens HeatmapData into Parquet rows.
func ConvertHeatmap(data *schema.HeatmapData) []HeatmapCellRow {
	rows := make([]HeatmapCellRow, len(data.Cells))
	for i, cell := range data.Cells {
		rows[i] = HeatmapCellRow{
			PropertyID:  data.PropertyID,
			Granularity: string(data.Granularity),
			BucketKey:   cell.Key,
			BucketDate:  cell.Date,
			Value:       cell.Value,
			EntryCount:  int32(cell.Count),
			Entries:     joinEntries(cell.Entries),
		}
	}
	return rows
}

// ConvertSeries flattens ChartData into Parquet rows.
func ConvertSeries(data *schema.ChartData) []SeriesPointRow {
	var rows []SeriesPointRow
	for _, ds := range data.Datasets {
		for i, label := range data.Labels {
			row := SeriesPointRow{
				PropertyID:  data.PropertyID,
				Granularity: string(data.Granularity),
				Dataset:     ds.Label,
				BucketKey:   label,
			}
			if i < len(ds.Values) {
				row.Value = ds.Values[i]
			}
			if i < len(ds.Entries) {
				row.Entries = joinEntries(ds.Entries[i])
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// ConvertPie flattens PieChartData into Parquet rows.
func ConvertPie(data *schema.PieChartData) []PieSliceRow {
	rows := make([]PieSliceRow, len(data.Slices))
	for i, slice := range data.Slices {
		rows[i] = PieSliceRow{
			PropertyID: data.PropertyID,
			Label:      slice.Label,
			Count:      int32(slice.Count),
			Entries:    joinEntries(slice.Entries),
		}
	}
	return rows
}

// ConvertScatter flattens ScatterChartData into Parquet rows.
func ConvertScatter(data *schema.ScatterChartData) []ScatterPointRow {
	rows := make([]ScatterPointRow, len(data.Points))
	for i, p := range data.Points {
		rows[i] = ScatterPointRow{
			PropertyID: data.PropertyID,
			X:          p.X,
			Y:          p.Y,
			Entries:    joinEntries(p.Entries),
		}
	}
	return rows
}

// ConvertBubble flattens BubbleChartData into Parquet rows.
func ConvertBubble(data *schema.BubbleChartData) []BubblePointRow {
	rows := make([]BubblePointRow, len(data.Points))
	for i, p := range data.Points {
		rows[i] = BubblePointRow{
			PropertyID:  data.PropertyID,
			Granularity: string(data.Granularity),
			X:           p.X,
			Y:           p.Y,
			R:           p.R,
			Count:       int32(p.Count),
			Entries:     joinEntries(p.Entries),
		}
	}
	return rows
}

// ConvertTagCloud flattens TagCloudData into Parquet rows.
func ConvertTagCloud(data *schema.TagCloudData) []TagCountRow {
	rows := make([]TagCountRow, len(data.Tags))
	for i, t := range data.Tags {
		rows[i] = TagCountRow{
			PropertyID: data.PropertyID,
			Tag:        t.Tag,
			Frequency:  int32(t.Frequency),
			Entries:    joinEntries(t.Entries),
		}
	}
	return rows
}

// ConvertTimeline flattens TimelineData into Parquet rows.
func ConvertTimeline(data *schema.TimelineData) []TimelinePointRow {
	rows := make([]TimelinePointRow, len(data.Points))
	for i, p := range data.Points {
		rows[i] = TimelinePointRow{
			PropertyID: data.PropertyID,
			Date:       p.Date,
			Label:      p.Label,
			Value:      p.Value,
			Entries:    joinEntries(p.Entries),
		}
	}
	return rows
}

// joinEntries packs entry paths into one pipe-separated column.
func joinEntries(entries []string) string {
	return strings.Join(entries, "|")
}
