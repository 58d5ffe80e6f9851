package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempograph/tempograph/schema"
)

func TestAggregateTagCloud(t *testing.T) {
	points := []schema.DataPoint{
		taggedPoint("a.md", "2024-01-15", "go", "notes"),
		taggedPoint("b.md", "2024-01-16", "go"),
	}

	data := AggregateTagCloud(points, "tags", "Tags", TagCloudOptions{CaseSensitive: true})
	require.Len(t, data.Tags, 2)

	top := data.Tags[0]
	assert.Equal(t, "go", top.Tag)
	assert.Equal(t, 2, top.Frequency)
	assert.Equal(t, []string{"a.md", "b.md"}, top.Entries)
	assert.Equal(t, 2, data.MaxFrequency)
}

func TestAggregateTagCloudRepeatedTagInOneEntry(t *testing.T) {
	points := []schema.DataPoint{
		taggedPoint("a.md", "2024-01-15", "running", "running"),
	}

	data := AggregateTagCloud(points, "tags", "Tags", TagCloudOptions{CaseSensitive: true})
	require.Len(t, data.Tags, 1)

	// Frequency counts occurrences, back-references list the entry once.
	assert.Equal(t, 2, data.Tags[0].Frequency)
	assert.Equal(t, []string{"a.md"}, data.Tags[0].Entries)
}

func TestAggregateTagCloudCasePolicy(t *testing.T) {
	points := []schema.DataPoint{
		taggedPoint("a.md", "2024-01-15", "Go"),
		taggedPoint("b.md", "2024-01-16", "go"),
	}

	// Case-sensitive (the default policy for tags) keeps both.
	data := AggregateTagCloud(points, "tags", "Tags", TagCloudOptions{CaseSensitive: true})
	assert.Len(t, data.Tags, 2)

	// Folded, they collapse under the first spelling.
	data = AggregateTagCloud(points, "tags", "Tags", TagCloudOptions{})
	require.Len(t, data.Tags, 1)
	assert.Equal(t, "Go", data.Tags[0].Tag)
	assert.Equal(t, 2, data.Tags[0].Frequency)
}

func TestAggregateTagCloudEmpty(t *testing.T) {
	data := AggregateTagCloud(nil, "tags", "Tags", TagCloudOptions{})
	assert.Empty(t, data.Tags)
	assert.Equal(t, 0, data.MaxFrequency)
}
