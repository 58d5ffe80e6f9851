package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

func TestParseFilenameDate(t *testing.T) {
	tests := []struct {
		name     string
		expected time.Time
		ok       bool
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-02", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-Q3", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-13-45", time.Time{}, false}, // calendar-invalid
		{"2024-13", time.Time{}, false},    // month out of range
		{"not-a-date", time.Time{}, false},
		{"meeting notes", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFilenameDate(tc.name)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestParseFilenameDateWeekly(t *testing.T) {
	// Week 1 is the week containing January 4th, so its Monday can fall
	// in the previous year.
	got, ok := ParseFilenameDate("2024-W01")
	require.True(t, ok)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseFilenameDate("2021-W01")
	require.True(t, ok)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.Equal(t, time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseFilenameDate("2024-W54")
	assert.False(t, ok)
	_, ok = ParseFilenameDate("2024-W0")
	assert.False(t, ok)
}

func TestParsePropertyDate(t *testing.T) {
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got, ok := ParsePropertyDate("2024-03-10")
	require.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = ParsePropertyDate(want)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = ParsePropertyDate("soon")
	assert.False(t, ok)
	_, ok = ParsePropertyDate(nil)
	assert.False(t, ok)
	_, ok = ParsePropertyDate(42)
	assert.False(t, ok)
	_, ok = ParsePropertyDate(time.Time{})
	assert.False(t, ok)
}

func TestResolveAnchorsRankedSources(t *testing.T) {
	created := time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)
	entries := []contract.Entry{
		&contract.FakeEntry{FilePath: "2024-01-15.md", Created: created},
		&contract.FakeEntry{FilePath: "meeting.md", Created: created},
		&contract.FakeEntry{FilePath: "empty.md"},
	}

	anchors := ResolveAnchors(entries, AnchorOptions{})
	require.Len(t, anchors, 3)

	// Dated filename wins at priority 0.
	dated := anchors["2024-01-15.md"]
	require.NotNil(t, dated)
	assert.Equal(t, schema.FilenameSource, dated.Source)
	assert.Equal(t, 0, dated.Priority)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), dated.Date)

	// Undated filename falls back to file metadata.
	meta := anchors["meeting.md"]
	require.NotNil(t, meta)
	assert.Equal(t, schema.MetadataSource, meta.Source)
	assert.Equal(t, created, meta.Date)

	// No source resolves: absence, not an error.
	assert.Nil(t, anchors["empty.md"])
}

func TestResolveAnchorsPropertyFirst(t *testing.T) {
	entry := &contract.FakeEntry{
		FilePath: "2024-01-15.md",
		Props:    map[string]any{"published": "2024-06-30"},
		Created:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// Without promotion the filename still wins.
	anchors := ResolveAnchors([]contract.Entry{entry}, AnchorOptions{Property: "published"})
	require.NotNil(t, anchors[entry.FilePath])
	assert.Equal(t, schema.FilenameSource, anchors[entry.FilePath].Source)

	// With promotion the property wins over the filename.
	anchors = ResolveAnchors([]contract.Entry{entry}, AnchorOptions{Property: "published", PropertyFirst: true})
	require.NotNil(t, anchors[entry.FilePath])
	assert.Equal(t, schema.PropertySource, anchors[entry.FilePath].Source)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), anchors[entry.FilePath].Date)
}

func TestResolveAnchorsUnparseableProperty(t *testing.T) {
	entry := &contract.FakeEntry{
		FilePath: "note.md",
		Props:    map[string]any{"published": "someday"},
		Created:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// A promoted property that fails to parse falls through to the next source.
	anchors := ResolveAnchors([]contract.Entry{entry}, AnchorOptions{Property: "published", PropertyFirst: true})
	require.NotNil(t, anchors["note.md"])
	assert.Equal(t, schema.MetadataSource, anchors["note.md"].Source)
}
