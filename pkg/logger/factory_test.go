package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/readkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("service and static attrs", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithService("readkitd"),
			logger.WithAttr(slog.String("region", "eu")),
		)
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "readkitd", entry["service"])
		assert.Equal(t, "eu", entry["region"])
	})

	t.Run("context value", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key{}))
		ctx := context.WithValue(context.Background(), key{}, "abc")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "abc", decode(t, buf)["request_id"])
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(context.Context) (slog.Attr, bool) {
				return slog.String("id", "42"), true
			}),
		)
		log.With(logger.Component("api")).InfoContext(context.Background(), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "42", entry["id"])
		assert.Equal(t, "api", entry["component"])
	})

	t.Run("extracted attrs stay outside groups", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
				return slog.String("request_id", "r1"), true
			}),
		)
		log.WithGroup("job").With(slog.Int("n", 3)).InfoContext(context.Background(), "msg", slog.Bool("done", true))
		entry := decode(t, buf)
		assert.Equal(t, "r1", entry["request_id"])
		job, ok := entry["job"].(map[string]any)
		require.True(t, ok, entry)
		assert.InDelta(t, 3, job["n"], 0)
		assert.Equal(t, true, job["done"])
		assert.NotContains(t, job, "request_id")
	})

	t.Run("missing context value adds nothing", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("request_id", key{}))
		log.WithGroup("g").InfoContext(context.Background(), "msg", slog.Int("a", 1))
		entry := decode(t, buf)
		assert.NotContains(t, entry, "request_id")
		assert.Equal(t, map[string]any{"a": float64(1)}, entry["g"])
	})
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := logger.ParseLevel("loud")
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
