package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// FormatProvider is an interface for different output formatters
type FormatProvider interface {
	FormatConfig(data map[string]any) (string, error)
	FormatValue(value any) (string, error)
	FormatPaths(paths []string) (string, error)
}

// ParseFormat converts a flag value into an OutputFormat
func ParseFormat(s string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(s))); format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q, must be one of: text, json, yaml", s)
	}
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// FormatConfig formats the merged mapping as a JSON object
func (f *JSONFormatter) FormatConfig(data map[string]any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}
	return f.marshal(data)
}

// FormatValue formats a single value as JSON
func (f *JSONFormatter) FormatValue(value any) (string, error) {
	return f.marshal(value)
}

// FormatPaths formats the discovered files as a JSON array
func (f *JSONFormatter) FormatPaths(paths []string) (string, error) {
	if paths == nil {
		paths = []string{}
	}
	return f.marshal(paths)
}

func (f *JSONFormatter) marshal(v any) (string, error) {
	var (
		out []byte
		err error
	)
	if f.Pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(out) + "\n", nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// FormatConfig formats the merged mapping as a YAML document
func (f *YAMLFormatter) FormatConfig(data map[string]any) (string, error) {
	if data == nil {
		data = map[string]any{}
	}
	return f.marshal(data)
}

// FormatValue formats a single value as YAML
func (f *YAMLFormatter) FormatValue(value any) (string, error) {
	return f.marshal(value)
}

// FormatPaths formats the discovered files as a YAML sequence
func (f *YAMLFormatter) FormatPaths(paths []string) (string, error) {
	if paths == nil {
		paths = []string{}
	}
	return f.marshal(paths)
}

func (f *YAMLFormatter) marshal(v any) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(out), nil
}

// GetFormatter returns the formatter for the given output format
func GetFormatter(format OutputFormat, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return NewFormatter(noColor)
	}
}
