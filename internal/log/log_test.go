package log_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexcatdad/exepath/internal/log"
)

func TestCreateHandler_Levels(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		level   string
		enabled []slog.Level
		muted   []slog.Level
	}{
		"debug": {level: "debug", enabled: []slog.Level{slog.LevelDebug, slog.LevelError}},
		"warn":  {level: "WARN", enabled: []slog.Level{slog.LevelWarn}, muted: []slog.Level{slog.LevelInfo}},
		"error": {level: "error", enabled: []slog.Level{slog.LevelError}, muted: []slog.Level{slog.LevelWarn}},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, err := log.CreateHandler(&bytes.Buffer{}, tc.level, log.TextFormat)
			require.NoError(t, err)
			for _, l := range tc.enabled {
				assert.True(t, h.Enabled(context.Background(), l), "level %s", l)
			}
			for _, l := range tc.muted {
				assert.False(t, h.Enabled(context.Background(), l), "level %s", l)
			}
		})
	}
}

func TestCreateHandler_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h, err := log.CreateHandler(&buf, "info", log.JSONFormat)
	require.NoError(t, err)

	slog.New(h).Info("resolved", "path", "/usr/bin/tool")
	assert.Contains(t, buf.String(), `"msg":"resolved"`)
	assert.Contains(t, buf.String(), `"path":"/usr/bin/tool"`)
}

func TestCreateHandler_Invalid(t *testing.T) {
	t.Parallel()

	_, err := log.CreateHandler(&bytes.Buffer{}, "loud", log.TextFormat)
	require.ErrorIs(t, err, log.ErrInvalidLevel)

	_, err = log.CreateHandler(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, log.ErrInvalidFormat)
}
