package config

import (
	"fmt"
	"sort"

	"github.com/wesleyorama2/localconfig/pkg/jsondecode"
)

// Config is a merged, read-only set of top-level configuration values
type Config struct {
	data map[string]any
}

// Has reports whether key was loaded
func (c *Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Get returns the value stored under key. Objects and arrays are returned as
// copies.
func (c *Config) Get(key string) (any, error) {
	value, ok := c.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return cloneValue(value), nil
}

// Set always fails with ErrReadOnly
func (c *Config) Set(key string, value any) error {
	return fmt.Errorf("%w: cannot set %q", ErrReadOnly, key)
}

// Unset always fails with ErrReadOnly
func (c *Config) Unset(key string) error {
	return fmt.Errorf("%w: cannot unset %q", ErrReadOnly, key)
}

// Keys returns the loaded keys in sorted order
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.data))
	for key := range c.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded keys
func (c *Config) Len() int {
	return len(c.data)
}

// All returns a copy of the merged mapping
func (c *Config) All() map[string]any {
	return cloneMap(c.data)
}

// String returns the string stored under key
func (c *Config) String(key string) (string, error) {
	return lookup[string](c, key)
}

// Bool returns the boolean stored under key
func (c *Config) Bool(key string) (bool, error) {
	return lookup[bool](c, key)
}

// Float64 returns the number stored under key
func (c *Config) Float64(key string) (float64, error) {
	return lookup[float64](c, key)
}

func lookup[T any](c *Config, key string) (T, error) {
	var zero T

	value, ok := c.data[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is a JSON %s", ErrType, key, jsondecode.Kind(value))
	}
	return typed, nil
}

// cloneValue creates a deep copy of a decoded JSON value.
func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		return cloneSlice(v)
	default:
		return val
	}
}

func cloneMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = cloneValue(v)
	}
	return result
}

func cloneSlice(s []any) []any {
	result := make([]any, len(s))
	for i, v := range s {
		result[i] = cloneValue(v)
	}
	return result
}
