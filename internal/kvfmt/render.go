package kvfmt

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Format names accepted by Render.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Render serializes data in the requested format.
func Render(data map[string]any, format string) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(out) + "\n", nil
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(out), nil
	case FormatCSV:
		return renderCSV(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// renderCSV flattens the nested map back to dotted keys and writes a
// two-column Key,Value table.
func renderCSV(data map[string]any) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Key", "Value"}); err != nil {
		return "", err
	}
	for _, kv := range Flatten(data) {
		if err := w.Write([]string{kv.Key, fmt.Sprintf("%v", kv.Value)}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// KV is one flattened key/value pair.
type KV struct {
	Key   string
	Value any
}

// Flatten converts a nested map to dotted-key pairs, sorted by key so the
// output is deterministic.
func Flatten(data map[string]any) []KV {
	var out []KV
	flattenInto(&out, "", data)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func flattenInto(out *[]KV, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenInto(out, key, sub)
			continue
		}
		*out = append(*out, KV{Key: key, Value: v})
	}
}
