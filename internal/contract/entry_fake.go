package contract

import "time"

// FakeEntry is a minimal Entry implementation for tests and examples.
type FakeEntry struct {
	FilePath string
	Props    map[string]any
	Created  time.Time
}

var _ Entry = &FakeEntry{} // Compile-time check

// Path returns the fake file path.
func (e *FakeEntry) Path() string { return e.FilePath }

// Name returns the filename without extension.
func (e *FakeEntry) Name() string { return BaseNameWithoutExt(e.FilePath) }

// Property returns the configured raw value, or nil when absent.
func (e *FakeEntry) Property(id string) any {
	if e.Props == nil {
		return nil
	}
	return e.Props[id]
}

// CreatedAt returns the configured creation time.
func (e *FakeEntry) CreatedAt() time.Time { return e.Created }
