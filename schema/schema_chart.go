package schema

// ChartDataset holds one series of values aligned with ChartData.Labels.
// Entries carries, per position, the paths of the contributing entries.
type ChartDataset struct {
	Label   string     `json:"label"`
	Values  []float64  `json:"values"`
	Entries [][]string `json:"entries"`
}

// ChartData is the aggregate consumed by time-series renderers. Buckets
// with zero numeric points are dropped entirely; there are no placeholder
// positions (unlike HeatmapData).
type ChartData struct {
	PropertyID  string         `json:"propertyId"`
	Granularity Granularity    `json:"granularity"`
	Labels      []string       `json:"labels"` // bucket keys in ascending date order
	Datasets    []ChartDataset `json:"datasets"`
}
