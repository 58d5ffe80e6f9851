package schema

import "time"

// HeatmapCell represents one calendar bucket in an intensity grid.
type HeatmapCell struct {
	Date    time.Time `json:"date"`            // canonical bucket start
	Key     string    `json:"key"`             // bucket key at the configured granularity
	Value   *float64  `json:"value,omitempty"` // mean of numeric values; nil when the bucket has none
	Count   int       `json:"count"`           // number of entries in the bucket
	Entries []string  `json:"entries"`         // back-references for click-through
}

// HeatmapData is the aggregate consumed by intensity-grid renderers.
// MinValue and MaxValue default to [0, 1] when no numeric data exists so
// color-scale math never divides by zero.
type HeatmapData struct {
	PropertyID  string        `json:"propertyId"`
	DisplayName string        `json:"displayName"`
	Granularity Granularity   `json:"granularity"`
	Cells       []HeatmapCell `json:"cells"` // sorted ascending by date
	MinDate     time.Time     `json:"minDate"`
	MaxDate     time.Time     `json:"maxDate"`
	MinValue    float64       `json:"minValue"`
	MaxValue    float64       `json:"maxValue"`
}
