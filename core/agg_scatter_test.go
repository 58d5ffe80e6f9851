package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/schema"
)

func TestAggregateScatter(t *testing.T) {
	points := []schema.DataPoint{
		anchoredPoint("c.md", "2024-01-21", floatPtr(9)),
		anchoredPoint("a.md", "2024-01-11", floatPtr(3)),
		anchoredPoint("b.md", "2024-01-16", floatPtr(5)),
		anchoredPoint("skip.md", "2024-01-12", nil), // no numeric value
		{EntryPath: "undated.md", Numeric: floatPtr(1)},
	}

	data := AggregateScatter(points, "rating", "Rating")
	require.Len(t, data.Points, 3)

	// Sorted by date, x normalized onto [0, 100].
	assert.Equal(t, 0.0, data.Points[0].X)
	assert.Equal(t, 3.0, data.Points[0].Y)
	assert.Equal(t, 50.0, data.Points[1].X)
	assert.Equal(t, 100.0, data.Points[2].X)
	assert.Equal(t, []string{"c.md"}, data.Points[2].Entries)
}

func TestAggregateScatterSingleInstant(t *testing.T) {
	points := []schema.DataPoint{
		anchoredPoint("a.md", "2024-01-15", floatPtr(3)),
		anchoredPoint("b.md", "2024-01-15", floatPtr(7)),
	}

	data := AggregateScatter(points, "rating", "Rating")
	require.Len(t, data.Points, 2)

	// Zero time range: every x collapses to 0 instead of dividing by zero.
	assert.Equal(t, 0.0, data.Points[0].X)
	assert.Equal(t, 0.0, data.Points[1].X)
}

func TestAggregateScatterEmpty(t *testing.T) {
	data := AggregateScatter(nil, "rating", "Rating")
	assert.Empty(t, data.Points)
}
