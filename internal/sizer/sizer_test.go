package sizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1K", want: 1024},
		{in: "1k", want: 1024},
		{in: "500M", want: 500 * 1024 * 1024},
		{in: "1G", want: 1 << 30},
		{in: "2T", want: 2 << 40},
		{in: "0.5K", want: 512},
		{in: "100B", want: 100},
		{in: "100", want: 100},
		{in: " 1K ", want: 1024},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "xG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSize(%q) = %d, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0.0B"},
		{in: 512, want: "512.0B"},
		{in: 1024, want: "1.0K"},
		{in: 1536, want: "1.5K"},
		{in: 1234567, want: "1.2M"},
		{in: 1 << 30, want: "1.0G"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// setupTree builds a small directory tree:
//
//	root/
//	  big.txt      (3000 bytes)
//	  small.txt    (10 bytes)
//	  .hidden.txt  (500 bytes)
//	  notes.md     (200 bytes)
//	  sub/
//	    inner.txt  (1500 bytes)
//	  node_modules/
//	    junk.js    (4000 bytes)
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel string, size int) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	write("big.txt", 3000)
	write("small.txt", 10)
	write(".hidden.txt", 500)
	write("notes.md", 200)
	write("sub/inner.txt", 1500)
	write("node_modules/junk.js", 4000)

	return root
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = filepath.Base(it.Path)
	}
	return out
}

func TestScanDepthOne(t *testing.T) {
	root := setupTree(t)

	items, err := Scan(root, Options{Depth: 1})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	got := names(items)
	// Depth 1: top-level entries only; dirs carry recursive totals;
	// hidden file excluded; sorted by size descending.
	want := []string{"node_modules", "big.txt", "sub", "notes.md", "small.txt"}
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
}

func TestScanDirTotals(t *testing.T) {
	root := setupTree(t)

	items, _ := Scan(root, Options{Depth: 1})
	for _, it := range items {
		if filepath.Base(it.Path) == "sub" {
			if !it.IsDir || it.Size != 1500 {
				t.Errorf("sub: IsDir=%v Size=%d, want dir with 1500", it.IsDir, it.Size)
			}
			return
		}
	}
	t.Fatal("sub not reported")
}

func TestScanRecursive(t *testing.T) {
	root := setupTree(t)

	items, _ := Scan(root, Options{Recursive: true})
	got := names(items)
	found := false
	for _, n := range got {
		if n == "inner.txt" {
			found = true
		}
	}
	if !found {
		t.Errorf("recursive scan missing nested file, got %v", got)
	}
}

func TestScanHidden(t *testing.T) {
	root := setupTree(t)

	items, _ := Scan(root, Options{Depth: 1, Hidden: true})
	found := false
	for _, n := range names(items) {
		if n == ".hidden.txt" {
			found = true
		}
	}
	if !found {
		t.Error("Hidden option should include dotfiles")
	}
}

func TestScanIgnore(t *testing.T) {
	root := setupTree(t)

	items, _ := Scan(root, Options{Depth: 1, Ignore: []string{"node_modules"}})
	for _, n := range names(items) {
		if n == "node_modules" {
			t.Error("ignored directory still reported")
		}
	}
}

func TestScanFilter(t *testing.T) {
	root := setupTree(t)

	items, _ := Scan(root, Options{Depth: 1, Filter: []string{".md"}})
	for _, it := range items {
		if !it.IsDir && filepath.Base(it.Path) != "notes.md" {
			t.Errorf("filter leaked file %s", it.Path)
		}
	}
}

func TestScanThreshold(t *testing.T) {
	root := setupTree(t)

	items, _ := Scan(root, Options{Depth: 1, Threshold: 1000})
	for _, it := range items {
		if it.Size < 1000 {
			t.Errorf("item %s below threshold: %d", it.Path, it.Size)
		}
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent"), Options{Depth: 1}); err == nil {
		t.Error("expected error for missing root")
	}
}
