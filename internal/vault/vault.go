// Package vault loads markdown entries with YAML frontmatter from a
// directory tree.
package vault

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tempograph/tempograph/internal/contract"
)

// Frontmatter fence.
var frontmatterDelim = []byte("---")

// Source walks a vault directory and exposes its markdown files as
// entries. Each call to Entries reloads from disk, so a long-lived caller
// observes file changes on its next render cycle.
type Source struct {
	Root string
}

var _ contract.EntrySource = &Source{} // Compile-time check

// NewSource returns a source rooted at the given directory.
func NewSource(root string) *Source {
	return &Source{Root: root}
}

// Entries loads every markdown file under the root, ordered by path.
// Dot-directories are skipped. A note with malformed frontmatter is kept
// with no properties; only filesystem failures abort the walk.
func (s *Source) Entries() ([]contract.Entry, error) {
	var entries []contract.Entry
	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		note, err := s.loadNote(path, d)
		if err != nil {
			return err
		}
		entries = append(entries, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk vault %q: %w", s.Root, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path() < entries[j].Path()
	})
	return entries, nil
}

// loadNote reads one markdown file and parses its frontmatter.
func (s *Source) loadNote(path string, d fs.DirEntry) (*Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read note %q: %w", path, err)
	}
	info, err := d.Info()
	if err != nil {
		return nil, fmt.Errorf("cannot stat note %q: %w", path, err)
	}

	rel, err := filepath.Rel(s.Root, path)
	if err != nil {
		rel = path
	}

	props, err := ParseFrontmatter(data)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Skipping frontmatter of %s", rel), err)
		props = nil
	}

	return &Note{
		path:    filepath.ToSlash(rel),
		name:    contract.BaseNameWithoutExt(path),
		props:   props,
		created: info.ModTime(),
	}, nil
}

// ParseFrontmatter extracts the YAML block fenced by "---" lines at the
// top of a markdown document. A document without a fence has no
// properties, which is not an error.
func ParseFrontmatter(data []byte) (map[string]any, error) {
	rest, ok := bytes.CutPrefix(data, frontmatterDelim)
	if !ok {
		return nil, nil
	}
	rest, ok = bytes.CutPrefix(rest, []byte("\n"))
	if !ok {
		if rest, ok = bytes.CutPrefix(rest, []byte("\r\n")); !ok {
			return nil, nil
		}
	}

	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return nil, fmt.Errorf("frontmatter fence is never closed")
	}

	props := map[string]any{}
	if err := yaml.Unmarshal(rest[:end], &props); err != nil {
		return nil, fmt.Errorf("cannot parse frontmatter: %w", err)
	}
	return props, nil
}
