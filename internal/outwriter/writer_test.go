package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSVPie(t *testing.T) {
	data := &schema.PieChartData{
		PropertyID: "status",
		Slices: []schema.PieSlice{
			{Label: "Running", Count: 3, Entries: []string{"a.md", "b.md", "c.md"}},
			{Label: "done", Count: 1, Entries: []string{"d.md"}},
		},
		Total: 4,
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVPie(&buf, data))

	records := parseCSV(t, &buf)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"property", "label", "count", "entries"}, records[0])
	assert.Equal(t, []string{"status", "Running", "3", "a.md|b.md|c.md"}, records[1])
	assert.Equal(t, []string{"status", "done", "1", "d.md"}, records[2])
}

func TestWriteCSVHeatmap(t *testing.T) {
	value := 3.0
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	data := &schema.HeatmapData{
		PropertyID:  "words",
		Granularity: schema.Daily,
		Cells: []schema.HeatmapCell{
			{Date: date, Key: "2024-01-15", Value: &value, Count: 2, Entries: []string{"a.md", "b.md"}},
			{Date: date.AddDate(0, 0, 1), Key: "2024-01-16", Entries: []string{}},
		},
	}

	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 1}
	require.NoError(t, writeCSVHeatmap(&buf, data, cfg))

	records := parseCSV(t, &buf)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"words", "daily", "2024-01-15", "2024-01-15 00:00:00", "3.0", "2", "a.md|b.md"}, records[1])

	// A synthesized cell has an empty value, not a zero.
	gap := records[2]
	assert.Equal(t, "2024-01-16", gap[2])
	assert.Equal(t, "", gap[4])
	assert.Equal(t, "0", gap[5])
}

func TestWriteCSVSeries(t *testing.T) {
	data := &schema.ChartData{
		PropertyID:  "words",
		Granularity: schema.Monthly,
		Labels:      []string{"2024-01", "2024-02"},
		Datasets: []schema.ChartDataset{{
			Label:   "Words",
			Values:  []float64{3, 10},
			Entries: [][]string{{"a.md", "b.md"}, {"c.md"}},
		}},
	}

	var buf bytes.Buffer
	cfg := &contract.Config{Precision: 1}
	require.NoError(t, writeCSVSeries(&buf, data, cfg))

	records := parseCSV(t, &buf)
	require.Len(t, records, 3)
	row := records[1]
	assert.Equal(t, "Words", row[2])
	assert.Equal(t, "2024-01", row[3])
	assert.Equal(t, "3.0", row[4])
	assert.True(t, strings.Contains(row[5], "a.md"))
}
