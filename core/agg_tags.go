package core

import (
	"sort"
	"strings"

	"github.com/tempograph/tempograph/schema"
)

// TagCloudOptions configures tag-frequency aggregation.
type TagCloudOptions struct {
	// CaseSensitive keeps "Running" and "running" as distinct tags. On by
	// default: tags are counted as stored, unlike pie grouping. Callers
	// wanting one policy across both shapes set the two options together.
	CaseSensitive bool
}

// AggregateTagCloud flattens every point's list items and counts frequency
// per tag. Frequency counts occurrences, so an entry listing the same tag
// twice contributes 2, while its path appears once in that tag's
// back-references. Tags are sorted descending by frequency, ties broken by
// first-occurrence order.
func AggregateTagCloud(points []schema.DataPoint, propertyID, displayName string, opts TagCloudOptions) schema.TagCloudData {
	type group struct {
		tag  *schema.TagCount
		seen map[string]bool
	}
	byKey := make(map[string]*group)
	tags := []*schema.TagCount{}

	for _, p := range points {
		for _, item := range p.Tags {
			key := item
			if !opts.CaseSensitive {
				key = strings.ToLower(key)
			}
			g, ok := byKey[key]
			if !ok {
				tag := &schema.TagCount{Tag: item, Entries: []string{}}
				g = &group{tag: tag, seen: map[string]bool{}}
				byKey[key] = g
				tags = append(tags, tag)
			}
			g.tag.Frequency++
			if !g.seen[p.EntryPath] {
				g.seen[p.EntryPath] = true
				g.tag.Entries = append(g.tag.Entries, p.EntryPath)
			}
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Frequency > tags[j].Frequency
	})

	data := schema.TagCloudData{
		PropertyID:  propertyID,
		DisplayName: displayName,
		Tags:        make([]schema.TagCount, 0, len(tags)),
	}
	for _, t := range tags {
		data.Tags = append(data.Tags, *t)
		if t.Frequency > data.MaxFrequency {
			data.MaxFrequency = t.Frequency
		}
	}
	return data
}
