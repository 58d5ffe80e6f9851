package schema

// TagCount represents one tag and how often it occurs across the point set.
// Frequency counts occurrences; Entries dedupes back-references per entry,
// so an entry listing the same tag twice contributes 2 to Frequency but
// appears once in Entries.
type TagCount struct {
	Tag       string   `json:"tag"`
	Frequency int      `json:"frequency"`
	Entries   []string `json:"entries"`
}

// TagCloudData is the aggregate consumed by frequency-cloud renderers.
// MaxFrequency supports client-side font-size scaling.
type TagCloudData struct {
	PropertyID   string     `json:"propertyId"`
	DisplayName  string     `json:"displayName"`
	Tags         []TagCount `json:"tags"` // sorted descending by frequency
	MaxFrequency int        `json:"maxFrequency"`
}
