// Package profile maintains the persisted PATH statements in the user's
// shell startup file.
//
// Each persisted path occupies one block: a blank line, a marker comment,
// and the export statement. The file is an external shared resource, also
// edited by the user and other tools, so the store re-reads it immediately
// before every mutation and only ever appends blocks or deletes the exact
// statement line it owns. There is no locking; this is a single-user
// interactive tool, not a server.
package profile

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rxxuzi/luka/internal/fsops"
)

// Marker is the comment line written directly above every persisted
// statement. The "lpath" spelling is the historical name of the command
// and is what existing profiles contain.
const Marker = "# Added by lpath ++= command"

// Statement returns the exact export line persisted for path. The line is
// the statement's identity: membership and deletion match on it byte for
// byte.
func Statement(path string) string {
	return fmt.Sprintf(`export PATH="$PATH:%s"`, path)
}

// Store appends and deletes per-path export statements in one profile
// file, keyed by normalized absolute path.
type Store struct {
	fs   fsops.FS
	path string
}

// NewStore creates a Store over the profile file at path.
func NewStore(fs fsops.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the profile file this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Has reports whether a statement for path is already persisted. A missing
// profile file simply has no statements.
func (s *Store) Has(path string) (bool, error) {
	lines, exists, err := s.readLines()
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	stmt := Statement(path)
	for _, line := range lines {
		if line == stmt {
			return true, nil
		}
	}
	return false, nil
}

// Append persists a statement block for path. The file is re-read first so
// a statement added by another process since Has was called is not
// duplicated. The profile file must exist: a missing home profile is an
// access error, not something this tool silently creates.
func (s *Store) Append(path string) error {
	lines, exists, err := s.readLines()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("profile file %s does not exist", s.path)
	}

	stmt := Statement(path)
	for _, line := range lines {
		if line == stmt {
			return nil
		}
	}

	block := "\n" + Marker + "\n" + stmt + "\n"
	if err := s.fs.AppendFile(s.path, []byte(block)); err != nil {
		return err
	}

	log.Debug().Str("profile", s.path).Str("path", path).Msg("persisted path statement")
	return nil
}

// Delete removes the statement line for path, and only that line. The
// marker comment above it is left in place: unrelated lines are never
// rewritten, and a later Append reuses the same block shape anyway.
func (s *Store) Delete(path string) (bool, error) {
	lines, exists, err := s.readLines()
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	stmt := Statement(path)
	kept := make([]string, 0, len(lines))
	deleted := false
	for _, line := range lines {
		if line == stmt {
			deleted = true
			continue
		}
		kept = append(kept, line)
	}
	if !deleted {
		return false, nil
	}

	content := strings.Join(kept, "\n")
	if len(kept) > 0 {
		content += "\n"
	}
	if err := s.fs.AtomicWrite(s.path, []byte(content), 0644); err != nil {
		return false, err
	}

	log.Debug().Str("profile", s.path).Str("path", path).Msg("deleted persisted path statement")
	return true, nil
}

// readLines reads the whole profile file. The second return value reports
// whether the file exists at all.
func (s *Store) readLines() ([]string, bool, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat profile file: %w", err)
	}
	if !exists {
		return nil, false, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read profile file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	// Split leaves a trailing empty element for a newline-terminated file;
	// drop it so join/append round-trips.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, true, nil
}
