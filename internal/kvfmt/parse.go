// Package kvfmt converts flat key=value text, as produced by shell tools
// and the sysinfo collector, into JSON, YAML or CSV.
//
// Dotted keys nest: "mem.total=123" becomes {"mem": {"total": 123}}.
// Values keep their string form unless they parse cleanly as integers or
// floats; surrounding double quotes are stripped first.
package kvfmt

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads key=value lines from r into a nested map. Lines without an
// "=" and blank lines are ignored.
func Parse(r io.Reader) (map[string]any, error) {
	data := make(map[string]any)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.Contains(line, "=") {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		insert(data, strings.Split(key, "."), convert(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}

// insert walks the dotted key path, creating nested maps as needed, and
// sets the final segment to value. If an intermediate segment already
// holds a scalar it is replaced by a map, matching last-write-wins.
func insert(m map[string]any, keys []string, value any) {
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = value
}

// convert strips surrounding quotes and promotes numeric strings.
func convert(s string) any {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
