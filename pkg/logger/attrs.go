package logger

import (
	"context"
	"log/slog"
)

type bundleKey struct{}

type bundle struct {
	language  string
	namespace string
}

// WithBundle records the language and namespace of the bundle being resolved
// or served, for BundleExtractor to log.
func WithBundle(ctx context.Context, language, namespace string) context.Context {
	return context.WithValue(ctx, bundleKey{}, bundle{language: language, namespace: namespace})
}

// BundleExtractor logs the bundle recorded by WithBundle as a "bundle" group
// with "language" and "namespace" attributes.
func BundleExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		b, ok := ctx.Value(bundleKey{}).(bundle)
		if !ok || (b.language == "" && b.namespace == "") {
			return slog.Attr{}, false
		}
		return slog.Group("bundle",
			slog.String("language", b.language),
			slog.String("namespace", b.namespace),
		), true
	}
}

// StringFromContext returns an extractor that logs the string stored under key
// as attribute name. Empty and missing values are skipped.
func StringFromContext(key any, name string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			return slog.String(name, v), true
		}
		return slog.Attr{}, false
	}
}

// Static returns an extractor that always adds the same attribute.
func Static(name, value string) ContextExtractor {
	attr := slog.String(name, value)
	return func(context.Context) (slog.Attr, bool) {
		return attr, true
	}
}
