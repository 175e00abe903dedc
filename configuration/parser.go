package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// lowerKeys returns a copy of m where all keys of all nested maps are lower cased.
func lowerKeys(m map[string]any) map[string]any {
	lowered := make(map[string]any, len(m))
	for key, val := range m {
		switch nested := val.(type) {
		case map[string]any:
			val = lowerKeys(nested)
		case map[any]any:
			// yaml decodes nested maps with interface keys
			val = lowerKeys(cast.ToStringMap(nested))
		}

		lowered[strings.ToLower(key)] = val
	}

	return lowered
}

// JSONLowerParser implements a JSON parser.
// all config keys are lower cased.
type JSONLowerParser struct{}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]any) ([]byte, error) {
	return json.Marshal(o)
}

// YAMLLowerParser implements a YAML parser.
// all config keys are lower cased.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return lowerKeys(out), nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]any) ([]byte, error) {
	return yaml.Marshal(o)
}
