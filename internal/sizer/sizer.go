// Package sizer implements the disk-usage summarizer behind "luka size".
//
// The walk is strictly sequential and symlink-free: symlinks are never
// followed or counted, so a cycle cannot occur and totals are stable.
// Unreadable directories are skipped, not fatal.
package sizer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Options controls a scan.
type Options struct {
	// Depth is how many directory levels to report. Ignored when
	// Recursive is set.
	Depth int

	// Recursive removes the depth limit.
	Recursive bool

	// Hidden includes dotfiles and dot-directories.
	Hidden bool

	// Threshold drops items smaller than this many bytes from the result.
	Threshold int64

	// Ignore patterns exclude matching names entirely, subtrees included.
	Ignore []string

	// Filter patterns restrict reported files to matching names.
	// Directories are always reported.
	Filter []string
}

// Item is one reported file or directory. Directory sizes are recursive
// totals computed under the same hidden-file rule as the walk.
type Item struct {
	Path    string
	Size    int64
	IsDir   bool
	Mode    fs.FileMode
	ModTime time.Time
}

// Scan walks root according to opts and returns the matching items sorted
// by size, largest first.
func Scan(root string, opts Options) ([]Item, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	maxDepth := opts.Depth
	if opts.Recursive {
		maxDepth = -1
	}

	items := walk(root, 0, maxDepth, opts)

	filtered := items[:0]
	for _, it := range items {
		if it.Size >= opts.Threshold {
			filtered = append(filtered, it)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Size > filtered[j].Size
	})

	return filtered, nil
}

// walk reports entries of dir, recursing while depth has not reached
// maxDepth (maxDepth < 0 means unlimited).
func walk(dir string, depth, maxDepth int, opts Options) []Item {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
		return nil
	}

	var items []Item
	for _, entry := range entries {
		name := entry.Name()
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}
		if matchesAny(name, opts.Ignore) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := entry.Info()
		if err != nil {
			continue
		}

		if entry.IsDir() {
			if maxDepth < 0 || depth+1 < maxDepth {
				items = append(items, walk(path, depth+1, maxDepth, opts)...)
			}
			items = append(items, Item{
				Path:    path,
				Size:    dirSize(path, opts.Hidden),
				IsDir:   true,
				Mode:    info.Mode(),
				ModTime: info.ModTime(),
			})
			continue
		}

		if len(opts.Filter) > 0 && !matchesAny(name, opts.Filter) {
			continue
		}
		items = append(items, Item{
			Path:    path,
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
		})
	}
	return items
}

// dirSize totals the regular files under path, honoring the hidden rule
// and skipping symlinks.
func dirSize(path string, hidden bool) int64 {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	var total int64
	for _, entry := range entries {
		name := entry.Name()
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if !hidden && strings.HasPrefix(name, ".") {
			continue
		}
		sub := filepath.Join(path, name)
		if entry.IsDir() {
			total += dirSize(sub, hidden)
			continue
		}
		if info, err := entry.Info(); err == nil {
			total += info.Size()
		}
	}
	return total
}

// matchesAny reports whether name matches any glob pattern or, for plain
// suffix patterns like ".md", ends with the pattern.
func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
		if strings.HasSuffix(name, p) {
			return true
		}
	}
	return false
}
