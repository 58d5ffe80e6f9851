package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/internal/contract"
)

// stubSource serves a swappable entry slice.
type stubSource struct {
	entries []contract.Entry
	err     error
}

func (s *stubSource) Entries() ([]contract.Entry, error) {
	return s.entries, s.err
}

var _ contract.EntrySource = &stubSource{} // Compile-time check

func TestEngineDataPoints(t *testing.T) {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	source := &stubSource{entries: []contract.Entry{
		&contract.FakeEntry{FilePath: "2024-01-15.md", Props: map[string]any{"words": 100}, Created: created},
	}}
	engine := NewEngine(source, AnchorOptions{})

	points, stamp, err := engine.DataPoints("words", ExtractOptions{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.NotEmpty(t, stamp)
	require.NotNil(t, points[0].Numeric)
	assert.Equal(t, 100.0, *points[0].Numeric)

	// Same entry objects: cached points come back, same stamp.
	again, stamp2, err := engine.DataPoints("words", ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, stamp, stamp2)
	assert.Equal(t, points[0].EntryPath, again[0].EntryPath)
}

func TestEngineDataPointsStampTracksCollection(t *testing.T) {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	source := &stubSource{entries: []contract.Entry{
		&contract.FakeEntry{FilePath: "a.md", Created: created},
	}}
	engine := NewEngine(source, AnchorOptions{})

	_, stamp, err := engine.DataPoints("words", ExtractOptions{})
	require.NoError(t, err)

	// A touched file produces a different stamp even at the same path.
	source.entries = []contract.Entry{
		&contract.FakeEntry{FilePath: "a.md", Created: created.Add(time.Minute)},
	}
	_, stamp2, err := engine.DataPoints("words", ExtractOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, stamp, stamp2)
}

func TestEngineDataPointsSourceError(t *testing.T) {
	engine := NewEngine(&stubSource{err: errors.New("boom")}, AnchorOptions{})

	_, _, err := engine.DataPoints("words", ExtractOptions{})
	assert.Error(t, err)
}
