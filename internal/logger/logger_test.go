package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "cli", true)

	l.Debug().Str("path", "/etc/app.json").Msg("config file found")

	out := buf.String()
	assert.Contains(t, out, "config file found")
	assert.Contains(t, out, "path=/etc/app.json")
	assert.Contains(t, out, "role=cli")
}

func TestNew_Quiet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "cli", false)

	l.Debug().Msg("hidden")
	l.Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Error().Msg("discarded")
	})
}
