package jsondecode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ErrSyntax is returned when the input is not syntactically valid JSON
var ErrSyntax = errors.New("invalid JSON syntax")

// Decoder decodes raw bytes into a Go value.
// A nil value with a nil error means the document carried no content.
type Decoder interface {
	Decode(data []byte) (any, error)
}

// DecoderFunc adapts a plain function to the Decoder interface
type DecoderFunc func(data []byte) (any, error)

// Decode calls f(data)
func (f DecoderFunc) Decode(data []byte) (any, error) {
	return f(data)
}

// Default is the gjson-backed decoder used when none is configured
var Default Decoder = GJSON{}

// GJSON decodes documents with github.com/tidwall/gjson
type GJSON struct{}

// Decode decodes data. Empty input and a literal null both yield (nil, nil).
// Numbers decode to float64.
func (GJSON) Decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: malformed UTF-8 characters", ErrSyntax)
	}

	if !gjson.ValidBytes(data) {
		return nil, syntaxError(data)
	}

	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		return nil, nil
	}

	return materialise(result), nil
}

// materialise converts a parsed result into Go values. When an object repeats
// a key the last occurrence wins.
func materialise(r gjson.Result) any {
	switch {
	case r.IsObject():
		m := make(map[string]any)
		r.ForEach(func(key, value gjson.Result) bool {
			m[key.String()] = materialise(value)
			return true
		})
		return m
	case r.IsArray():
		items := r.Array()
		s := make([]any, len(items))
		for i, item := range items {
			s[i] = materialise(item)
		}
		return s
	default:
		return r.Value()
	}
}

// syntaxError builds an ErrSyntax carrying encoding/json's diagnostic, which
// includes the byte offset of the failure
func syntaxError(data []byte) error {
	var v any
	err := json.Unmarshal(data, &v)

	var se *json.SyntaxError
	switch {
	case errors.As(err, &se):
		return fmt.Errorf("%w at offset %d: %s", ErrSyntax, se.Offset, se.Error())
	case err != nil:
		return fmt.Errorf("%w: %s", ErrSyntax, err.Error())
	default:
		return ErrSyntax
	}
}

// Kind names the JSON kind of a decoded value
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
