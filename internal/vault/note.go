package vault

import (
	"time"

	"github.com/tempograph/tempograph/internal/contract"
)

// Note is one markdown file loaded from a vault.
type Note struct {
	path    string
	name    string
	props   map[string]any
	created time.Time
}

var _ contract.Entry = &Note{} // Compile-time check

// Path returns the note's path relative to the vault root.
func (n *Note) Path() string { return n.path }

// Name returns the filename without extension.
func (n *Note) Name() string { return n.name }

// Property returns the raw frontmatter value for id, or nil when absent.
func (n *Note) Property(id string) any {
	if n.props == nil {
		return nil
	}
	return n.props[id]
}

// CreatedAt returns the file's metadata timestamp.
func (n *Note) CreatedAt() time.Time { return n.created }
