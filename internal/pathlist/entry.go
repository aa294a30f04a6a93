// Package pathlist implements the ordered, deduplicated search-path list
// behind the "luka path" command.
//
// The package acts as the core between the CLI and the persistence layer.
// A Manager re-derives its working list from the process environment at
// every invocation; operations are plain functions of (current list,
// arguments) that return per-path reports, so the CLI only formats
// outcomes and decides the exit status.
//
// Key components:
//   - Entry: one path element with its normalized comparison form
//   - List: the ordered sequence parsed from a PATH-style value
//   - Manager: add / remove / deduplicate / list operations
package pathlist

import (
	"fmt"
	"path/filepath"
)

// Entry is a single search-path element. Raw preserves the form the user
// or the environment supplied; Norm is the absolute, cleaned form used for
// all membership comparisons. Two entries are equal iff their Norm fields
// are byte-equal.
type Entry struct {
	Raw  string
	Norm string
}

// NewEntry normalizes raw into an Entry. Relative components are collapsed
// against the current working directory; symlinks are not resolved and the
// path does not have to exist, so a path can be added preemptively.
func NewEntry(raw string) (Entry, error) {
	if raw == "" {
		return Entry{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q: %v", ErrInvalidPath, raw, err)
	}
	return Entry{Raw: raw, Norm: filepath.Clean(abs)}, nil
}

// Equal reports whether two entries refer to the same normalized path.
func (e Entry) Equal(other Entry) bool {
	return e.Norm == other.Norm
}
