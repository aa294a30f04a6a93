package kvfmt

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"host=box1",
		`os.name="Ubuntu 24.04"`,
		"mem.total=16384",
		"mem.used_pct=42.5",
		"",
		"not a key value line",
	}, "\n")

	data, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := data["host"]; got != "box1" {
		t.Errorf("host = %v, want box1", got)
	}

	osMap, ok := data["os"].(map[string]any)
	if !ok {
		t.Fatalf("os is %T, want nested map", data["os"])
	}
	if got := osMap["name"]; got != "Ubuntu 24.04" {
		t.Errorf("os.name = %v, want quoted string stripped", got)
	}

	memMap, ok := data["mem"].(map[string]any)
	if !ok {
		t.Fatalf("mem is %T, want nested map", data["mem"])
	}
	if got := memMap["total"]; got != int64(16384) {
		t.Errorf("mem.total = %v (%T), want int64 16384", got, got)
	}
	if got := memMap["used_pct"]; got != 42.5 {
		t.Errorf("mem.used_pct = %v, want 42.5", got)
	}

	if _, ok := data["not a key value line"]; ok {
		t.Error("malformed line should be ignored")
	}
}

func TestRenderJSON(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": int64(1)}}

	out, err := Render(data, FormatJSON)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
}

func TestRenderYAML(t *testing.T) {
	data := map[string]any{"mem": map[string]any{"total": int64(16)}}

	out, err := Render(data, FormatYAML)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "mem:") || !strings.Contains(out, "total: 16") {
		t.Errorf("unexpected YAML output:\n%s", out)
	}
}

func TestRenderCSV(t *testing.T) {
	data := map[string]any{
		"b": "two",
		"a": map[string]any{"x": int64(1)},
	}

	out, err := Render(data, FormatCSV)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "Key,Value" {
		t.Errorf("header = %q, want Key,Value", lines[0])
	}
	// Flattened keys are sorted
	if lines[1] != "a.x,1" || lines[2] != "b,two" {
		t.Errorf("rows = %v, want [a.x,1 b,two]", lines[1:])
	}
}

func TestRenderUnsupported(t *testing.T) {
	if _, err := Render(map[string]any{}, "toml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
