package core

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// DefaultLabelDepth caps recursion into nested host values. It is a
// parameter, not a hidden constant, so embedders can tune it for hosts
// with deeper object graphs.
const DefaultLabelDepth = contract.DefaultLabelDepth

// LabelOptions tunes the display-label derivation.
type LabelOptions struct {
	// Depth is the remaining recursion budget. Zero or negative yields
	// no label, guarding against self-referential host objects.
	Depth int

	// Unknown is the fallback label for link references whose target
	// cannot be named. Empty means "no label".
	Unknown string

	// CapitalizeBools renders boolean-like values as "True"/"False"
	// instead of "true"/"false" (pie and timeline contexts only).
	CapitalizeBools bool
}

// Object fields preferred, in order, when deriving a label from a map.
var labelFields = []string{"display", "value", "name", "label", "text", "data"}

// DisplayLabel derives the human-readable string for a raw property
// value. An empty return means "no label": the value must not appear as
// a category and timelines show an empty string. This derivation is the
// single source of truth wherever a raw value becomes a category key or
// a visible label.
func DisplayLabel(raw any, opts LabelOptions) string {
	if opts.Depth <= 0 {
		return ""
	}
	switch v := raw.(type) {
	case nil:
		return ""
	case schema.Truthy:
		if !v.IsTruthy() {
			return ""
		}
		return boolAwareString(strings.TrimSpace(v.String()), opts)
	case bool:
		return formatBool(v, opts)
	case string:
		return stringLabel(v, opts)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return joinLabels(items, opts)
	case []any:
		return joinLabels(v, opts)
	case map[string]any:
		return objectLabel(v, opts)
	default:
		return ""
	}
}

// stringLabel trims a string value, parsing it once when it looks like
// stringified JSON.
func stringLabel(s string, opts LabelOptions) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if looksLikeJSON(trimmed) {
		var parsed any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return DisplayLabel(parsed, descend(opts))
		}
	}
	return boolAwareString(trimmed, opts)
}

// joinLabels derives each element's label and joins with ", ", dropping
// elements with no label. An empty joined result means no label.
func joinLabels(items []any, opts LabelOptions) string {
	child := descend(opts)
	var parts []string
	for _, item := range items {
		if label := DisplayLabel(item, child); label != "" {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, ", ")
}

// objectLabel prefers the well-known displayable fields, then falls back
// to link-reference naming.
func objectLabel(obj map[string]any, opts LabelOptions) string {
	child := descend(opts)
	for _, field := range labelFields {
		if inner, ok := obj[field]; ok {
			if label := DisplayLabel(inner, child); label != "" {
				return label
			}
		}
	}

	// Internal link references carry icon/subpath fields; name them by
	// their target's filename.
	_, hasIcon := obj["icon"]
	_, hasSubpath := obj["subpath"]
	if hasIcon || hasSubpath {
		if path, ok := obj["path"].(string); ok && path != "" {
			if name := contract.BaseNameWithoutExt(path); name != "" {
				return name
			}
		}
		return opts.Unknown
	}
	return ""
}

// formatBool renders a boolean per the capitalization option.
func formatBool(v bool, opts LabelOptions) string {
	if opts.CapitalizeBools {
		if v {
			return "True"
		}
		return "False"
	}
	return strconv.FormatBool(v)
}

// boolAwareString capitalizes boolean-like strings when requested.
func boolAwareString(s string, opts LabelOptions) string {
	if !opts.CapitalizeBools {
		return s
	}
	switch strings.ToLower(s) {
	case "true":
		return "True"
	case "false":
		return "False"
	default:
		return s
	}
}

// looksLikeJSON reports whether a string is plausibly stringified JSON.
func looksLikeJSON(s string) bool {
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}

// descend spends one unit of recursion budget.
func descend(opts LabelOptions) LabelOptions {
	opts.Depth--
	return opts
}
