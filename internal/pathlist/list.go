package pathlist

import (
	"iter"
	"strings"
)

// Separator is the list separator in PATH-style values.
const Separator = ":"

// List is an ordered sequence of search-path entries. Insertion order is
// significant. Duplicates are possible - the environment does not prevent
// them - until Deduplicate runs.
type List struct {
	entries []Entry
}

// Parse splits a PATH-style value into a List. Empty components are
// dropped; the remaining components keep their raw spelling and are
// normalized for comparison. Components that cannot be normalized are
// kept verbatim with their raw form as the comparison key, so a damaged
// PATH still round-trips.
func Parse(value string) *List {
	l := &List{}
	if value == "" {
		return l
	}
	for _, part := range strings.Split(value, Separator) {
		if part == "" {
			continue
		}
		e, err := NewEntry(part)
		if err != nil {
			e = Entry{Raw: part, Norm: part}
		}
		l.entries = append(l.entries, e)
	}
	return l
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Contains reports whether an entry with the same normalized form exists.
func (l *List) Contains(e Entry) bool {
	for _, x := range l.entries {
		if x.Equal(e) {
			return true
		}
	}
	return false
}

// Append adds an entry at the end of the list.
func (l *List) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// RemoveAll deletes every entry equal to e and reports how many were
// removed. Relative order of the surviving entries is preserved.
func (l *List) RemoveAll(e Entry) int {
	kept := l.entries[:0]
	removed := 0
	for _, x := range l.entries {
		if x.Equal(e) {
			removed++
			continue
		}
		kept = append(kept, x)
	}
	l.entries = kept
	return removed
}

// Deduplicate keeps the first occurrence of each normalized form, in
// order, and reports whether any entry was dropped.
func (l *List) Deduplicate() bool {
	seen := make(map[string]struct{}, len(l.entries))
	kept := l.entries[:0]
	for _, x := range l.entries {
		if _, ok := seen[x.Norm]; ok {
			continue
		}
		seen[x.Norm] = struct{}{}
		kept = append(kept, x)
	}
	changed := len(kept) != len(l.entries)
	l.entries = kept
	return changed
}

// All returns the entries as (1-based index, raw path) pairs. The sequence
// is recomputed from the current state on each range, so it is safe to
// call again after mutations.
func (l *List) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, x := range l.entries {
			if !yield(i+1, x.Raw) {
				return
			}
		}
	}
}

// String joins the raw entry forms back into a PATH-style value. A list
// that was never mutated reproduces its input byte for byte (modulo empty
// components, which Parse drops).
func (l *List) String() string {
	parts := make([]string, len(l.entries))
	for i, x := range l.entries {
		parts[i] = x.Raw
	}
	return strings.Join(parts, Separator)
}
