package jsondecode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGJSONDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{
			name:     "Object",
			input:    `{"a": 1, "b": "two", "c": [true, null]}`,
			expected: map[string]any{"a": float64(1), "b": "two", "c": []any{true, nil}},
		},
		{
			name:     "Nested object",
			input:    `{"db": {"host": "localhost", "port": 5432}}`,
			expected: map[string]any{"db": map[string]any{"host": "localhost", "port": float64(5432)}},
		},
		{
			name:     "Duplicate key keeps last",
			input:    `{"a": 1, "a": 2}`,
			expected: map[string]any{"a": float64(2)},
		},
		{
			name:     "Nested duplicate key keeps last",
			input:    `{"db": {"host": "a", "host": "b"}, "list": [{"k": 1, "k": 2}]}`,
			expected: map[string]any{"db": map[string]any{"host": "b"}, "list": []any{map[string]any{"k": float64(2)}}},
		},
		{
			name:     "Empty containers",
			input:    `{"o": {}, "a": []}`,
			expected: map[string]any{"o": map[string]any{}, "a": []any{}},
		},
		{
			name:     "Array",
			input:    `[1, 2]`,
			expected: []any{float64(1), float64(2)},
		},
		{
			name:     "String",
			input:    `"hello"`,
			expected: "hello",
		},
		{
			name:     "Number",
			input:    `42`,
			expected: float64(42),
		},
		{
			name:     "Empty input",
			input:    ``,
			expected: nil,
		},
		{
			name:     "Whitespace only",
			input:    " \n\t ",
			expected: nil,
		},
		{
			name:     "Literal null",
			input:    `null`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Default.Decode([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestGJSONDecode_SyntaxError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Unquoted key", input: `{ this is not json }`},
		{name: "Trailing comma", input: `{"a": 1,}`},
		{name: "Truncated", input: `{"a": `},
		{name: "Garbage", input: `hello`},
		{name: "Invalid UTF-8 in string", input: "{\"s\": \"\xff\"}"},
		{name: "Truncated UTF-8 sequence", input: "{\"s\": \"caf\xc3\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Default.Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, ErrSyntax))
		})
	}
}

func TestSyntaxErrorCarriesOffset(t *testing.T) {
	_, err := Default.Decode([]byte(`{"a": 1,}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at offset")
}

func TestInvalidUTF8Message(t *testing.T) {
	_, err := Default.Decode([]byte("{\"s\": \"\xff\"}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestDecoderFunc(t *testing.T) {
	called := false
	dec := DecoderFunc(func(data []byte) (any, error) {
		called = true
		return map[string]any{"raw": string(data)}, nil
	})

	v, err := dec.Decode([]byte("x"))
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, map[string]any{"raw": "x"}, v)
}

func TestKind(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{nil, "null"},
		{map[string]any{}, "object"},
		{[]any{}, "array"},
		{"s", "string"},
		{true, "boolean"},
		{float64(1), "number"},
		{struct{}{}, "struct {}"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kind(tt.value))
		})
	}
}
