package pathlist

import (
	"fmt"
	"iter"
)

// ProfileStore is the persisted-statement store behind persistent add and
// remove. Implementations are keyed by normalized absolute path and must
// re-read their backing file before every mutation; the file is shared
// with the user's shell and other tools.
type ProfileStore interface {
	// Has reports whether a statement for path is already persisted.
	Has(path string) (bool, error)

	// Append persists a statement block for path. It is a no-op if the
	// statement already exists.
	Append(path string) error

	// Delete removes the persisted statement for path, reporting whether
	// a statement was actually deleted.
	Delete(path string) (bool, error)
}

// Manager owns the in-memory search-path list for the duration of one
// invocation. It holds no state across invocations: the list is re-derived
// from the environment at construction and written back at most once at
// the end, so it cannot diverge from shell state modified in between.
type Manager struct {
	list    *List
	store   ProfileStore
	changed bool
}

// NewManager creates a Manager over the given PATH-style value.
func NewManager(pathValue string, store ProfileStore) *Manager {
	return &Manager{
		list:  Parse(pathValue),
		store: store,
	}
}

// Add processes each path independently and in order: normalize, append
// unless already present, and - when persistent - upsert the profile
// statement. A path that fails does not abort the remaining paths. Add
// never reorders existing entries and is idempotent.
func (m *Manager) Add(paths []string, persistent bool) []Report {
	var reports []Report
	for _, raw := range paths {
		e, err := NewEntry(raw)
		if err != nil {
			reports = append(reports, Report{Outcome: OutcomeError, Path: raw, Err: err})
			continue
		}

		if m.list.Contains(e) {
			reports = append(reports, Report{Outcome: OutcomeSkipped, Path: e.Norm})
			continue
		}

		m.list.Append(e)
		m.changed = true
		reports = append(reports, Report{Outcome: OutcomeAdded, Path: e.Norm})

		if !persistent {
			continue
		}

		has, err := m.store.Has(e.Norm)
		if err != nil {
			reports = append(reports, Report{
				Outcome: OutcomeError,
				Path:    e.Norm,
				Err:     fmt.Errorf("%w: %v", ErrConfigAccess, err),
			})
			continue
		}
		if has {
			reports = append(reports, Report{Outcome: OutcomeAlreadyPersisted, Path: e.Norm})
			continue
		}
		if err := m.store.Append(e.Norm); err != nil {
			reports = append(reports, Report{
				Outcome: OutcomeError,
				Path:    e.Norm,
				Err:     fmt.Errorf("%w: %v", ErrConfigAccess, err),
			})
			continue
		}
		reports = append(reports, Report{Outcome: OutcomePersisted, Path: e.Norm})
	}
	return reports
}

// Remove processes each path independently and in order, removing every
// matching entry from the list and the persisted statement from the
// profile. Removing an absent path is a safe no-op reported as NotFound.
func (m *Manager) Remove(paths []string) []Report {
	var reports []Report
	for _, raw := range paths {
		e, err := NewEntry(raw)
		if err != nil {
			reports = append(reports, Report{Outcome: OutcomeError, Path: raw, Err: err})
			continue
		}

		if n := m.list.RemoveAll(e); n > 0 {
			m.changed = true
			reports = append(reports, Report{Outcome: OutcomeRemoved, Path: e.Norm})
		} else {
			reports = append(reports, Report{Outcome: OutcomeNotFound, Path: e.Norm})
		}

		deleted, err := m.store.Delete(e.Norm)
		if err != nil {
			reports = append(reports, Report{
				Outcome: OutcomeError,
				Path:    e.Norm,
				Err:     fmt.Errorf("%w: %v", ErrConfigAccess, err),
			})
			continue
		}
		if deleted {
			reports = append(reports, Report{Outcome: OutcomePersistedRemoved, Path: e.Norm})
		}
	}
	return reports
}

// Deduplicate keeps the first occurrence of each normalized path and
// reports whether anything was actually removed. An already-clean list is
// left byte-identical.
func (m *Manager) Deduplicate() bool {
	if m.list.Deduplicate() {
		m.changed = true
		return true
	}
	return false
}

// List returns the current entries as (1-based index, path) pairs.
func (m *Manager) List() iter.Seq2[int, string] {
	return m.list.All()
}

// Len returns the number of entries in the current list.
func (m *Manager) Len() int {
	return m.list.Len()
}

// Changed reports whether any operation mutated the in-memory list.
func (m *Manager) Changed() bool {
	return m.changed
}

// String returns the current list as a PATH-style value.
func (m *Manager) String() string {
	return m.list.String()
}
