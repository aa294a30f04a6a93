package shell

import (
	"strings"
	"testing"
)

func TestInitSnippet(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		want  []string
	}{
		{
			name:  "bash",
			shell: "bash",
			want:  []string{"luka() {", "eval \"$__luka_out\"", "command luka"},
		},
		{
			name:  "zsh uses posix snippet",
			shell: "zsh",
			want:  []string{"luka() {"},
		},
		{
			name:  "fish",
			shell: "fish",
			want:  []string{"function luka", "LUKA_SHELL fish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitSnippet(tt.shell)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("snippet for %s missing %q:\n%s", tt.shell, w, got)
				}
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, s := range []string{"", "bash", "zsh", "fish"} {
		if !Supported(s) {
			t.Errorf("Supported(%q) = false, want true", s)
		}
	}
	if Supported("powershell") {
		t.Error("Supported(powershell) = true, want false")
	}
}

func TestEvalHint(t *testing.T) {
	if got := EvalHint(""); got != `eval "$(luka init bash)"` {
		t.Errorf("EvalHint(\"\") = %q", got)
	}
	if got := EvalHint("fish"); got != "luka init fish | source" {
		t.Errorf("EvalHint(fish) = %q", got)
	}
}
