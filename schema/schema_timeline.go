package schema

import "time"

// TimelinePoint is one entry placed on a timeline. Label is the derived
// display label, empty (never null) when the value is not displayable.
type TimelinePoint struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Value   *float64  `json:"value,omitempty"`
	Entries []string  `json:"entries"`
}

// TimelineData is the aggregate consumed by timeline renderers. Points
// are sorted ascending by date; MinDate/MaxDate come from the first and
// last point and default to the computation time when no points exist,
// so the shape is never undefined.
type TimelineData struct {
	PropertyID  string          `json:"propertyId"`
	DisplayName string          `json:"displayName"`
	Points      []TimelinePoint `json:"points"`
	MinDate     time.Time       `json:"minDate"`
	MaxDate     time.Time       `json:"maxDate"`
}
