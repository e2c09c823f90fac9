package space

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Format selects the encoding of a range file.
type Format int

// Supported range file encodings.
const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the encoding from the file extension: .yaml and
// .yml are YAML, anything else is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadRanges reads a range file. The file maps parameter names to
// {min, step, max} objects; parameters and fields not mentioned keep their
// DefaultRanges value.
func LoadRanges(path string) (Ranges, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ranges{}, fmt.Errorf("failed to read range file: %w", err)
	}

	ranges, err := DecodeRanges(data, FormatFromPath(path))
	if err != nil {
		return Ranges{}, fmt.Errorf("failed to parse range file %s: %w", path, err)
	}

	return ranges, nil
}

// DecodeRanges decodes a range table overlaid on DefaultRanges and
// validates the result.
func DecodeRanges(data []byte, format Format) (Ranges, error) {
	ranges := DefaultRanges()

	var err error
	switch format {
	case FormatYAML:
		err = decodeYAML(data, &ranges)
	default:
		err = decodeJSON(data, &ranges)
	}
	if err != nil {
		return Ranges{}, err
	}

	if err := ranges.Validate(); err != nil {
		return Ranges{}, err
	}
	return ranges, nil
}

func decodeJSON(data []byte, ranges *Ranges) error {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	seen := make(map[Param]bool, len(entries))
	for name, raw := range entries {
		param, err := lookupParam(name, seen)
		if err != nil {
			return err
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ranges[param]); err != nil {
			return fmt.Errorf("%s: %w", param, err)
		}
	}
	return nil
}

func decodeYAML(data []byte, ranges *Ranges) error {
	var entries map[string]yaml.Node
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return err
	}

	seen := make(map[Param]bool, len(entries))
	for name, node := range entries {
		param, err := lookupParam(name, seen)
		if err != nil {
			return err
		}

		if err := checkYAMLFields(&node); err != nil {
			return fmt.Errorf("%s: %w", param, err)
		}
		if err := node.Decode(&ranges[param]); err != nil {
			return fmt.Errorf("%s: %w", param, err)
		}
	}
	return nil
}

// lookupParam resolves a range file key and rejects a second key for an
// already seen parameter.
func lookupParam(name string, seen map[Param]bool) (Param, error) {
	param, err := ParseParam(name)
	if err != nil {
		return 0, err
	}
	if seen[param] {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateParam, name)
	}
	seen[param] = true
	return param, nil
}

// checkYAMLFields rejects keys of a range entry other than min, step and
// max, matching the JSON decoder's DisallowUnknownFields.
func checkYAMLFields(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "min", "step", "max":
		default:
			return fmt.Errorf("line %d: unknown field %q", node.Content[i].Line, key)
		}
	}
	return nil
}

// Encode serializes the range table in the given format. YAML output keeps
// the parameter declaration order.
func (r Ranges) Encode(format Format) ([]byte, error) {
	if format == FormatYAML {
		root := &yaml.Node{Kind: yaml.MappingNode}
		for i, pr := range r {
			var value yaml.Node
			if err := value.Encode(pr); err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Value: Param(i).String()}
			root.Content = append(root.Content, key, &value)
		}
		return yaml.Marshal(root)
	}

	entries := make(map[string]ParameterRange, NumParams)
	for i, pr := range r {
		entries[Param(i).String()] = pr
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Save writes the range table to path, choosing the encoding from the
// file extension.
func (r Ranges) Save(path string) error {
	data, err := r.Encode(FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("failed to serialize range file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write range file: %w", err)
	}

	return nil
}
