package core

import (
	"strconv"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// ExtractOptions configures data point construction for one property.
type ExtractOptions struct {
	LabelDepth int
	Unknown    string
}

// Numeric converts a raw property value into a normalized numeric value.
// Booleans map to 1/0 so checkbox-style properties chart as intensity;
// anything else non-numeric yields nil, never an error.
func Numeric(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		if v {
			return floatPtr(1)
		}
		return floatPtr(0)
	case int:
		return floatPtr(float64(v))
	case int64:
		return floatPtr(float64(v))
	case uint64:
		return floatPtr(float64(v))
	case float32:
		return floatPtr(float64(v))
	case float64:
		return floatPtr(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return floatPtr(f)
		}
		return nil
	case schema.Truthy:
		if v.IsTruthy() {
			return floatPtr(1)
		}
		return floatPtr(0)
	default:
		return nil
	}
}

// ListValues converts a raw value into its list items. Only list-shaped
// values qualify; scalars yield nil so tag clouds never invent tags.
func ListValues(raw any, opts ExtractOptions) []string {
	labelOpts := LabelOptions{Depth: opts.LabelDepth, Unknown: opts.Unknown}
	switch v := raw.(type) {
	case []string:
		items := make([]string, 0, len(v))
		for _, s := range v {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				items = append(items, trimmed)
			}
		}
		return items
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if label := DisplayLabel(item, labelOpts); label != "" {
				items = append(items, label)
			}
		}
		return items
	default:
		return nil
	}
}

// BuildDataPoints builds one immutable data point per entry for the given
// property, pairing each entry's raw value with its resolved anchor.
// Entries without the property still produce a point (with nil numeric
// and empty label) so categorical skips and date-only shapes stay cheap
// to reason about downstream.
func BuildDataPoints(entries []contract.Entry, anchors map[string]*schema.DateAnchor, propertyID string, opts ExtractOptions) []schema.DataPoint {
	if opts.LabelDepth <= 0 {
		opts.LabelDepth = DefaultLabelDepth
	}
	labelOpts := LabelOptions{Depth: opts.LabelDepth, Unknown: opts.Unknown}

	points := make([]schema.DataPoint, 0, len(entries))
	for _, e := range entries {
		raw := e.Property(propertyID)
		points = append(points, schema.DataPoint{
			EntryPath: e.Path(),
			EntryName: e.Name(),
			Anchor:    anchors[e.Path()],
			Raw:       raw,
			Numeric:   Numeric(raw),
			Label:     DisplayLabel(raw, labelOpts),
			Tags:      ListValues(raw, opts),
		})
	}
	return points
}

// floatPtr returns a pointer to v.
func floatPtr(v float64) *float64 {
	return &v
}
