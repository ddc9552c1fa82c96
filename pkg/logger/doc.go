// Package logger provides structured logging with context extraction and Sentry integration.
//
// This package extends the standard library's log/slog with automatic
// context-based attribute injection and optional Sentry error reporting.
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	log := logger.New(slog.LevelInfo,
//		logger.Static("service", "consolei18n"),
//		logger.StringFromContext(requestIDKey{}, "request_id"),
//	)
//
//	log.InfoContext(ctx, "bundle served", slog.String("path", p))
//	// Output: {"level":"INFO","msg":"bundle served","path":"...","service":"consolei18n","request_id":"abc-123"}
//
// # Configuration
//
// [Config] carries env tags for caarlos0/env. [FromConfig] parses the level
// and enables Sentry when SENTRY_DSN is set:
//
//	log := logger.FromConfig(cfg.Log, extractors...)
//
// If SENTRY_DSN is empty, the logger falls back to stdout-only logging,
// so the same code path works in development and production.
//
// # Context Extractors
//
// A ContextExtractor is a function that extracts a log attribute from context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors are called on every log call, ensuring fresh values for request-scoped data.
// Return false from the extractor to skip adding the attribute for that log entry.
//
// # Bundle Attributes
//
// Code resolving or serving a bundle records it on the context, and
// [BundleExtractor] logs it as a group:
//
//	ctx = logger.WithBundle(ctx, "en-US", "adminPortal")
//	log.ErrorContext(ctx, "load path failed", slog.Any("error", err))
//	// {"msg":"load path failed",...,"bundle":{"language":"en-US","namespace":"adminPortal"}}
//
// # Handler Wrapping
//
// [NewContextHandler] adds extraction to any slog.Handler:
//
//	h := logger.NewContextHandler(slog.NewTextHandler(os.Stderr, nil), extractors...)
//	log := slog.New(h)
//
// Use [NewNope] where a logger is required but output is not wanted.
package logger
