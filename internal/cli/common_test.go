package cli

import "testing"

func TestExportStatement(t *testing.T) {
	t.Setenv("LUKA_SHELL", "")
	if got, want := exportStatement("/usr/bin:/bin"), `export PATH="/usr/bin:/bin"`; got != want {
		t.Errorf("exportStatement() = %q, want %q", got, want)
	}

	t.Setenv("LUKA_SHELL", "fish")
	if got, want := exportStatement("/usr/bin:/bin"), `set -gx PATH "/usr/bin:/bin"`; got != want {
		t.Errorf("exportStatement() = %q, want %q", got, want)
	}
}

func TestCountf(t *testing.T) {
	tests := []struct {
		count    int
		singular string
		plural   string
		want     string
	}{
		{0, "entry", "entries", "0 entries"},
		{1, "entry", "entries", "1 entry"},
		{2, "entry", "entries", "2 entries"},
	}

	for _, tt := range tests {
		if got := Countf(tt.count, tt.singular, tt.plural); got != tt.want {
			t.Errorf("Countf(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
