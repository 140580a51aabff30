package gfcolor

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := NewRegistry()
	r.Named("a space nobody registered")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "a space nobody registered")

	buf.Reset()
	clash, err := NewColorSpaceFromPrimaries(SRGB, rec709_red, rec709_green, rec709_blue, d65, 1.8, 0)
	require.NoError(t, err)
	NewRegistry(WithColorSpaces(clash))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "name=sRGB")

	buf.Reset()
	srgb := r.Named(SRGB)
	require.ErrorIs(t, r.ConvertRGB(srgb, srgb, make([]float32, 4)), ErrInvalidBufferSize)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "length=4")

	SetLogger(nil)
	require.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
