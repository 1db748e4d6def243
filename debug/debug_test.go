package debug

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"":        Info,
		"error":   Error,
		"WARN":    Warning,
		"warning": Warning,
		" debug ": Debug,
		"trace":   Trace,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestContextLogger(t *testing.T) {
	defer ProgramLevel.Set(ProgramLevel.Level())

	var buf bytes.Buffer
	ctx := NewContext(context.Background(), &buf)

	SetLevel(Warning)
	Info.Log(ctx, "hidden")
	assert.Empty(t, buf.String())

	ctx, _ = With(ctx, slog.String("file", "dump.lsif"))
	LogError(ctx, "decode failed", errors.New("boom"))
	assert.Contains(t, buf.String(), "decode failed")
	assert.Contains(t, buf.String(), "file=dump.lsif")
	assert.Contains(t, buf.String(), "error=boom")

	buf.Reset()
	SetLevel(Trace)
	Trace.Log(ctx, "entry")
	assert.Contains(t, buf.String(), "entry")

	buf.Reset()
	_, done := Start(ctx, "verify")
	done()
	assert.Contains(t, buf.String(), "msg=begin")
	assert.Contains(t, buf.String(), "msg=end")
	assert.Contains(t, buf.String(), "op=verify")
	assert.Contains(t, buf.String(), "elapsed=")
}

func TestDefaultLogger(t *testing.T) {
	assert.Equal(t, slog.Default(), getLogger(context.Background()))
}
