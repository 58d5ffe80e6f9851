package core

import (
	"fmt"
	"time"

	"github.com/tempograph/tempograph/schema"
)

// BucketKeyFormatDaily is the key layout for daily and weekly buckets
// (a weekly key is the ISO date of the Monday of that week).
const BucketKeyFormatDaily = "2006-01-02"

// errUnknownGranularity builds the failure for an unrecognized granularity.
// Configuration validation catches this at the boundary; hitting it here
// means a caller bypassed validation, so the message stays descriptive.
func errUnknownGranularity(g schema.Granularity) error {
	return fmt.Errorf("unknown granularity %q. Must be one of: daily, weekly, monthly, quarterly, yearly", g)
}

// BucketKey returns the canonical key of the calendar period containing t
// at the given granularity. Two timestamps map to the same key iff they
// fall in the same period.
func BucketKey(t time.Time, g schema.Granularity) (string, error) {
	switch g {
	case schema.Daily:
		return t.Format(BucketKeyFormatDaily), nil
	case schema.Weekly:
		return mondayOf(t).Format(BucketKeyFormatDaily), nil
	case schema.Monthly:
		return t.Format("2006-01"), nil
	case schema.Quarterly:
		return fmt.Sprintf("%04d-Q%d", t.Year(), quarterOf(t)), nil
	case schema.Yearly:
		return fmt.Sprintf("%04d", t.Year()), nil
	default:
		return "", errUnknownGranularity(g)
	}
}

// BucketStart returns the canonical start instant of the period containing
// t. Any two dates with equal BucketKey yield the same instant.
func BucketStart(t time.Time, g schema.Granularity) (time.Time, error) {
	switch g {
	case schema.Daily:
		return midnight(t), nil
	case schema.Weekly:
		return midnight(mondayOf(t)), nil
	case schema.Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()), nil
	case schema.Quarterly:
		firstMonth := time.Month((quarterOf(t)-1)*3 + 1)
		return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, t.Location()), nil
	case schema.Yearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()), nil
	default:
		return time.Time{}, errUnknownGranularity(g)
	}
}

// Advance moves a bucket start forward (or backward, for negative n) by n
// periods. Combined with BucketStart it enumerates every bucket between a
// min and max date inclusive, including buckets with zero entries.
func Advance(t time.Time, g schema.Granularity, n int) (time.Time, error) {
	start, err := BucketStart(t, g)
	if err != nil {
		return time.Time{}, err
	}
	switch g {
	case schema.Daily:
		return start.AddDate(0, 0, n), nil
	case schema.Weekly:
		return start.AddDate(0, 0, 7*n), nil
	case schema.Monthly:
		return start.AddDate(0, n, 0), nil
	case schema.Quarterly:
		return start.AddDate(0, 3*n, 0), nil
	default: // Yearly; unknown granularities already failed in BucketStart
		return start.AddDate(n, 0, 0), nil
	}
}

// SameBucket reports whether a and b fall in the same calendar period at
// the given granularity.
func SameBucket(a, b time.Time, g schema.Granularity) (bool, error) {
	ka, err := BucketKey(a, g)
	if err != nil {
		return false, err
	}
	kb, err := BucketKey(b, g)
	if err != nil {
		return false, err
	}
	return ka == kb, nil
}

// mondayOf returns the Monday of the ISO week containing t, preserving
// the clock time.
func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week started six days earlier
	}
	return t.AddDate(0, 0, 1-weekday)
}

// quarterOf returns the 1-based quarter containing t.
func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
