package base

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the -format flag.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render encodes v in the given format.
func Render(format string, v any) (string, error) {
	switch format {
	case FormatJSON, "":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(yamlValue(v))
		if err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected %s or %s)", format, FormatJSON, FormatYAML)
	}
}

// yamlValue rewrites json.Number leaves as Go numbers so YAML does not
// quote them.
func yamlValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = yamlValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = yamlValue(item)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
