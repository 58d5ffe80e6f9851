package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tempograph/tempograph/schema"
)

func TestCanIncrementallyUpdate(t *testing.T) {
	base := StructuralSignature{
		"words":  {{Kind: schema.HeatmapChart, Granularity: schema.Daily}},
		"status": {{Kind: schema.PieChart}, {Kind: schema.TimelineChart}},
	}

	same := StructuralSignature{
		"words":  {{Kind: schema.HeatmapChart, Granularity: schema.Daily}},
		"status": {{Kind: schema.PieChart}, {Kind: schema.TimelineChart}},
	}
	assert.True(t, CanIncrementallyUpdate(base, same))
}

func TestCanIncrementallyUpdateRejections(t *testing.T) {
	base := StructuralSignature{
		"words": {{Kind: schema.HeatmapChart, Granularity: schema.Daily}},
	}

	tests := []struct {
		name     string
		previous StructuralSignature
		current  StructuralSignature
	}{
		{
			"no previous charts",
			StructuralSignature{},
			base,
		},
		{
			"empty chart lists count as none",
			StructuralSignature{"words": {}},
			base,
		},
		{
			"property removed",
			base,
			StructuralSignature{},
		},
		{
			"property renamed",
			base,
			StructuralSignature{"pages": {{Kind: schema.HeatmapChart, Granularity: schema.Daily}}},
		},
		{
			"chart count changed",
			base,
			StructuralSignature{"words": {
				{Kind: schema.HeatmapChart, Granularity: schema.Daily},
				{Kind: schema.SeriesChart, Granularity: schema.Daily},
			}},
		},
		{
			"chart kind changed",
			base,
			StructuralSignature{"words": {{Kind: schema.SeriesChart, Granularity: schema.Daily}}},
		},
		{
			"granularity changed",
			base,
			StructuralSignature{"words": {{Kind: schema.HeatmapChart, Granularity: schema.Weekly}}},
		},
		{
			"show-empty toggled",
			base,
			StructuralSignature{"words": {{Kind: schema.HeatmapChart, Granularity: schema.Daily, ShowEmpty: true}}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, CanIncrementallyUpdate(tc.previous, tc.current))
		})
	}
}
