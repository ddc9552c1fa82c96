// Package bundleserver serves console i18n bundles at the paths the backend
// loader resolves, together with liveness and readiness endpoints.
package bundleserver

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/consolei18n"
	"github.com/dmitrymomot/consolei18n/pkg/health"
	"github.com/dmitrymomot/consolei18n/pkg/i18n"
	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

var (
	// ErrNoBundles is returned when Config.Bundles is nil.
	ErrNoBundles = errors.New("bundleserver: bundle filesystem is not configured")

	// ErrNoSources is returned when Config.App or Config.State is nil.
	ErrNoSources = errors.New("bundleserver: config sources are not configured")
)

// Config configures the bundle server.
type Config struct {
	// Bundles holds the resource tree: {language}/{directory}/{namespace}.json.
	Bundles fs.FS
	App     consolei18n.AppConfigSource
	State   consolei18n.StateSource
	Logger  *slog.Logger
}

// New returns the HTTP handler. Bundles are mounted under
// /{appBase}/{resourcePath}.
//
// The mount prefix is resolved once, when New is called. A later change of
// the app base or of the deployment resource path is not picked up by the
// returned handler; build a new one instead. The readiness endpoint reads
// both sources on every request.
func New(cfg Config) (http.Handler, error) {
	if cfg.Bundles == nil {
		return nil, ErrNoBundles
	}
	if cfg.App == nil || cfg.State == nil {
		return nil, ErrNoSources
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewNope()
	}

	appBase, err := cfg.App.AppBase()
	if err != nil {
		return nil, fmt.Errorf("app base: %w", err)
	}
	localeCfg, err := cfg.State.I18nConfig()
	if err != nil {
		return nil, fmt.Errorf("i18n config: %w", err)
	}
	prefix := i18n.ResourcePrefix(appBase, localeCfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(bundleContext(prefix))
	r.Use(requestLogger(log))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Sources{
		health.SourceAppConfig: health.Reader(func() error {
			_, err := cfg.App.AppBase()
			return err
		}),
		health.SourceStore: health.Reader(func() error {
			_, err := cfg.State.I18nConfig()
			return err
		}),
	}, health.WithLogger(log)))

	r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServerFS(cfg.Bundles)))

	log.Info("bundles mounted", slog.String("prefix", prefix))

	return r, nil
}

// bundleContext tags bundle requests with their language and namespace so
// that log entries of a missing bundle name what the loader asked for.
func bundleContext(prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if language, namespace, ok := parseBundlePath(prefix, r.URL.Path); ok {
				r = r.WithContext(logger.WithBundle(r.Context(), language, namespace))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// parseBundlePath splits {prefix}/{language}/.../{namespace}[.hash].json.
func parseBundlePath(prefix, p string) (language, namespace string, ok bool) {
	rest, found := strings.CutPrefix(p, prefix+"/")
	if !found {
		return "", "", false
	}
	language, file, found := strings.Cut(rest, "/")
	if !found || language == "" || path.Ext(file) != ".json" {
		return "", "", false
	}
	namespace, _, _ = strings.Cut(path.Base(file), ".")
	if namespace == "" {
		return "", "", false
	}
	return language, namespace, true
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			} else if ww.Status() >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			log.Log(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RequestIDExtractor adds the chi request ID to log entries as "request_id".
func RequestIDExtractor() logger.ContextExtractor {
	return logger.StringFromContext(middleware.RequestIDKey, "request_id")
}
