package schema

// ScatterPoint is a single point in a scatter cloud. X is the entry's
// anchor time normalized to [0, 100] across the point set; Y is the raw
// numeric value, unscaled.
type ScatterPoint struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Entries []string `json:"entries"`
}

// ScatterChartData is the aggregate consumed by scatter renderers.
type ScatterChartData struct {
	PropertyID  string         `json:"propertyId"`
	DisplayName string         `json:"displayName"`
	Points      []ScatterPoint `json:"points"`
}

// BubblePoint is a single bucket in a bubble cloud. X is the bucket's
// normalized time position in [0, 100], Y the bucket's mean numeric value
// and R a radius in [5, 30] proportional to bucket density.
type BubblePoint struct {
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	R       float64  `json:"r"`
	Count   int      `json:"count"`
	Entries []string `json:"entries"`
}

// BubbleChartData is the aggregate consumed by bubble renderers.
type BubbleChartData struct {
	PropertyID  string        `json:"propertyId"`
	DisplayName string        `json:"displayName"`
	Granularity Granularity   `json:"granularity"`
	Points      []BubblePoint `json:"points"`
}
