package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Formatter renders configuration values as human-readable text
type Formatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new text formatter
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Formatter{
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatConfig prints one "key = value" line per key, in key order. Values
// are printed as compact JSON.
func (f *Formatter) FormatConfig(data map[string]any) (string, error) {
	if len(data) == 0 {
		return fmt.Sprintf("%s %s\n", InfoIcon(f.NoColor), f.scheme.Muted.Sprint("no configuration values")), nil
	}

	var buf strings.Builder
	for _, key := range sortedKeys(data) {
		value, err := json.Marshal(data[key])
		if err != nil {
			return "", fmt.Errorf("error formatting key %q: %w", key, err)
		}
		buf.WriteString(fmt.Sprintf("%s = %s\n", f.scheme.Key.Sprint(key), f.scheme.Value.Sprint(string(value))))
	}

	return buf.String(), nil
}

// FormatValue prints a single value. Strings are printed without quotes so
// the output can be used directly by shell scripts.
func (f *Formatter) FormatValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s + "\n", nil
	}

	out, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("error formatting value: %w", err)
	}
	return string(out) + "\n", nil
}

// FormatPaths prints the discovered files, numbered in merge order
func (f *Formatter) FormatPaths(paths []string) (string, error) {
	if len(paths) == 0 {
		return fmt.Sprintf("%s %s\n", InfoIcon(f.NoColor), f.scheme.Muted.Sprint("no config files found")), nil
	}

	var buf strings.Builder
	width := len(fmt.Sprint(len(paths)))
	for i, p := range paths {
		index := fmt.Sprintf("%*d.", width, i+1)
		buf.WriteString(fmt.Sprintf("%s %s\n", f.scheme.Index.Sprint(index), f.scheme.Path.Sprint(p)))
	}

	return buf.String(), nil
}

// sortedKeys returns the keys of data in order
func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
