package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

type ctxKey struct{}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("injects extracted attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo,
			logger.Static("service", "consolei18n"),
			logger.StringFromContext(ctxKey{}, "request_id"),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "bundle served")

		entry := decodeLine(t, &buf)
		require.Equal(t, "bundle served", entry["msg"])
		require.Equal(t, "consolei18n", entry["service"])
		require.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("skips missing context values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, logger.StringFromContext(ctxKey{}, "request_id"))

		log.InfoContext(context.Background(), "no request")

		entry := decodeLine(t, &buf)
		require.NotContains(t, entry, "request_id")
	})

	t.Run("respects level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelWarn)

		log.Info("hidden")
		require.Zero(t, buf.Len())

		log.Warn("shown")
		require.NotZero(t, buf.Len())
	})

	t.Run("ignores nil extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, nil, logger.Static("k", "v"))

		require.NotPanics(t, func() { log.Info("ok") })
		require.Equal(t, "v", decodeLine(t, &buf)["k"])
	})

	t.Run("keeps extractors across WithAttrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, logger.Static("k", "v")).With("component", "store")

		log.Info("ok")

		entry := decodeLine(t, &buf)
		require.Equal(t, "v", entry["k"])
		require.Equal(t, "store", entry["component"])
	})
}

func TestBundleExtractor(t *testing.T) {
	t.Parallel()

	t.Run("logs language and namespace", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, logger.BundleExtractor())

		ctx := logger.WithBundle(context.Background(), "en-US", "adminPortal")
		log.ErrorContext(ctx, "load path failed")

		entry := decodeLine(t, &buf)
		require.Equal(t, map[string]any{"language": "en-US", "namespace": "adminPortal"}, entry["bundle"])
	})

	t.Run("skips context without bundle", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, slog.LevelInfo, logger.BundleExtractor())

		log.InfoContext(context.Background(), "no bundle")
		require.NotContains(t, decodeLine(t, &buf), "bundle")
	})

	t.Run("wraps any handler", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(logger.NewContextHandler(slog.NewTextHandler(&buf, nil), logger.BundleExtractor()))

		log.InfoContext(logger.WithBundle(context.Background(), "fr-FR", "common"), "served")
		require.Contains(t, buf.String(), "bundle.language=fr-FR")
		require.Contains(t, buf.String(), "bundle.namespace=common")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, logger.ParseLevel(tt.in))
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	log := logger.FromConfig(logger.Config{Level: "error"})
	require.NotNil(t, log)
	require.False(t, log.Enabled(context.Background(), slog.LevelWarn))
	require.True(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotPanics(t, func() { log.Error("discarded") })
}
