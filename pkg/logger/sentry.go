package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// ErrorsOnly keeps warnings out of Sentry; only errors are forwarded.
	ErrorsOnly bool `env:"SENTRY_ERRORS_ONLY"`
}

// sentryLevels returns the levels that become Sentry issues and the levels
// stored as Sentry logs.
func (c SentryConfig) sentryLevels() (events, logs []slog.Level) {
	events = []slog.Level{slog.LevelError}
	if c.ErrorsOnly {
		return events, []slog.Level{slog.LevelError}
	}
	return events, []slog.Level{slog.LevelWarn, slog.LevelError}
}

// NewWithSentry creates a logger writing to stdout at level and forwarding
// warnings and errors to Sentry. Without a DSN, or if the SDK fails to
// initialize, it logs to stdout only. Extractors apply to both destinations.
func NewWithSentry(cfg SentryConfig, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	stdout := jsonHandler(os.Stdout, level)

	if cfg.DSN == "" {
		return slog.New(NewContextHandler(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("sentry init failed, logging to stdout only", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(stdout, extractors...))
	}

	events, logs := cfg.sentryLevels()
	toSentry := sentryslog.Option{
		EventLevel: events,
		LogLevel:   logs,
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(fanout{stdout, toSentry}, extractors...))
}
