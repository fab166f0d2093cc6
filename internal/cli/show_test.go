package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/localconfig/config"
)

func TestShow(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, ws.home, `{"a": 1, "b": "home"}`)
	ws.write(t, ws.proj, `{"b": "local"}`)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "Text",
			args:     []string{"show", testFile, "--no-color"},
			expected: "a = 1\nb = \"local\"\n",
		},
		{
			name:     "JSON",
			args:     []string{"show", testFile, "--format", "json"},
			expected: "{\n  \"a\": 1,\n  \"b\": \"local\"\n}\n",
		},
		{
			name:     "YAML",
			args:     []string{"show", testFile, "-f", "yaml"},
			expected: "a: 1\nb: local\n",
		},
		{
			name:     "Without home",
			args:     []string{"show", testFile, "--no-home", "--format", "json"},
			expected: "{\n  \"b\": \"local\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestShowTreeScan(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, ws.home, `{"x": 1}`)
	ws.write(t, ws.proj, `{"y": 2}`)

	stdout, _, err := run("show", testFile, "--tree", "--no-home", "--format", "json")

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": 1,\n  \"y\": 2\n}\n", stdout)
}

func TestShowDecodeError(t *testing.T) {
	ws := newWorkspace(t)
	ws.write(t, ws.proj, `{ broken`)

	stdout, _, err := run("show", testFile)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrDecode))
	assert.Empty(t, stdout)
}

func TestPaths(t *testing.T) {
	ws := newWorkspace(t)
	homeFile := ws.write(t, ws.home, `{}`)
	projFile := ws.write(t, ws.proj, `{}`)

	stdout, _, err := run("paths", testFile, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "1. "+homeFile+"\n2. "+projFile+"\n", stdout)

	stdout, _, err = run("paths", testFile, "--no-home", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["`+projFile+`"]`, stdout)
}

func TestPathsNothingFound(t *testing.T) {
	newWorkspace(t)

	stdout, _, err := run("paths", testFile, "--no-color")

	require.NoError(t, err)
	assert.Contains(t, stdout, "no config files found")
}
