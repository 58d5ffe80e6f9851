// Package core implements the temporal aggregation engine: date anchor
// resolution, calendar bucketing, value extraction and the seven
// aggregation shapes.
package core

import (
	"regexp"
	"strconv"
	"time"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// AnchorOptions configures the ranked date anchor sources.
type AnchorOptions struct {
	// Property names an entry property to parse as a generic date value.
	// Empty disables the property source.
	Property string

	// PropertyFirst promotes the property source to priority 0, pushing
	// filename inference to 1 and file metadata to 2. A user-selected
	// anchor property must always win over filename inference.
	PropertyFirst bool
}

// anchorSource is one ranked resolver in the anchor chain.
type anchorSource struct {
	kind    schema.AnchorSource
	resolve func(e contract.Entry) (time.Time, bool)
}

// Filename date patterns, ordered from finest to coarsest granularity.
var (
	dailyNameRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	weeklyNameRe    = regexp.MustCompile(`^(\d{4})-W(\d{1,2})$`)
	monthlyNameRe   = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	quarterlyNameRe = regexp.MustCompile(`^(\d{4})-Q([1-4])$`)
	yearlyNameRe    = regexp.MustCompile(`^(\d{4})$`)
)

// Date layouts accepted when parsing a property value as a date.
var propertyDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
}

// ResolveAnchors resolves one date anchor (or none) per entry, keyed by
// entry path. It is a pure function of the entries and options: no entry
// ever causes an error, absence is a valid, expected state.
func ResolveAnchors(entries []contract.Entry, opts AnchorOptions) map[string]*schema.DateAnchor {
	sources := buildAnchorSources(opts)
	anchors := make(map[string]*schema.DateAnchor, len(entries))
	for _, e := range entries {
		anchors[e.Path()] = resolveEntry(e, sources)
	}
	return anchors
}

// resolveEntry walks the ranked sources and returns the first success,
// or nil when every source fails.
func resolveEntry(e contract.Entry, sources []anchorSource) *schema.DateAnchor {
	for priority, src := range sources {
		if date, ok := src.resolve(e); ok {
			return &schema.DateAnchor{Date: date, Source: src.kind, Priority: priority}
		}
	}
	return nil
}

// buildAnchorSources assembles the ranked source chain for the options.
func buildAnchorSources(opts AnchorOptions) []anchorSource {
	filename := anchorSource{kind: schema.FilenameSource, resolve: func(e contract.Entry) (time.Time, bool) {
		return ParseFilenameDate(e.Name())
	}}
	metadata := anchorSource{kind: schema.MetadataSource, resolve: func(e contract.Entry) (time.Time, bool) {
		created := e.CreatedAt()
		return created, !created.IsZero()
	}}

	if opts.Property == "" {
		return []anchorSource{filename, metadata}
	}

	property := anchorSource{kind: schema.PropertySource, resolve: func(e contract.Entry) (time.Time, bool) {
		return ParsePropertyDate(e.Property(opts.Property))
	}}
	if opts.PropertyFirst {
		return []anchorSource{property, filename, metadata}
	}
	return []anchorSource{filename, property, metadata}
}

// ParseFilenameDate parses a filename (without extension) against the
// ordered date patterns: YYYY-MM-DD, YYYY-Www, YYYY-MM, YYYY-Qn, YYYY.
func ParseFilenameDate(name string) (time.Time, bool) {
	if m := dailyNameRe.FindStringSubmatch(name); m != nil {
		// time.Parse validates the calendar, rejecting 2024-13-45.
		t, err := time.Parse(BucketKeyFormatDaily, name)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if m := weeklyNameRe.FindStringSubmatch(name); m != nil {
		year, _ := strconv.Atoi(m[1])
		week, _ := strconv.Atoi(m[2])
		return isoWeekMonday(year, week)
	}
	if m := monthlyNameRe.FindStringSubmatch(name); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := quarterlyNameRe.FindStringSubmatch(name); m != nil {
		year, _ := strconv.Atoi(m[1])
		quarter, _ := strconv.Atoi(m[2])
		firstMonth := time.Month((quarter-1)*3 + 1)
		return time.Date(year, firstMonth, 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := yearlyNameRe.FindStringSubmatch(name); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// isoWeekMonday returns the Monday of ISO week `week` of `year`.
// Week 1 is the week containing January 4th; weeks outside [1, 53] fail
// so the next anchor source gets tried.
func isoWeekMonday(year, week int) (time.Time, bool) {
	if week < 1 || week > 53 {
		return time.Time{}, false
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := mondayOf(jan4)
	return week1Monday.AddDate(0, 0, (week-1)*7), true
}

// ParsePropertyDate parses an entry property as a generic date value.
// Accepts time.Time directly and strings in a small set of layouts.
func ParsePropertyDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		for _, layout := range propertyDateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
