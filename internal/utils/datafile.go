package utils

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DataFormat is the encoding of a static data file
type DataFormat string

const (
	FormatJSON DataFormat = "json"
	FormatYAML DataFormat = "yaml"
)

// DetectFormat picks the data format from a file extension
func DetectFormat(path string) (DataFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported data file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Decode unmarshals data in the given format into target
func Decode(data []byte, format DataFormat, target interface{}) error {
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported data format %q", format)
	}
	return nil
}
