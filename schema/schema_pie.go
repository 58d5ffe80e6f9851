package schema

// PieSlice represents one category and its occurrence count.
type PieSlice struct {
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Entries []string `json:"entries"`
}

// PieChartData is the aggregate consumed by categorical renderers.
// Slices are sorted descending by count; ties keep first-occurrence order.
// Values with no displayable label never appear as a slice.
type PieChartData struct {
	PropertyID  string     `json:"propertyId"`
	DisplayName string     `json:"displayName"`
	Slices      []PieSlice `json:"slices"`
	Total       int        `json:"total"` // sum of all slice counts
}
