package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

var (
	// ErrSourceNotReady wraps the error of a source that cannot be read yet.
	ErrSourceNotReady = errors.New("health: source not ready")

	// ErrSourceTimeout is reported when a source is not read within the timeout.
	ErrSourceTimeout = errors.New("health: source check timed out")
)

// Names of the sources the i18n loader reads.
const (
	SourceAppConfig = "app_config"
	SourceStore     = "store"
)

const defaultTimeout = 5 * time.Second

// CheckFunc reports whether one source is ready.
type CheckFunc func(ctx context.Context) error

// Sources maps a source name to its check.
type Sources map[string]CheckFunc

// Reader turns a source accessor into a CheckFunc. An accessor error is
// reported wrapped in ErrSourceNotReady.
func Reader(read func() error) CheckFunc {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := read(); err != nil {
			return fmt.Errorf("%w: %w", ErrSourceNotReady, err)
		}
		return nil
	}
}

// Report is the readiness of all sources.
type Report struct {
	Sources map[string]SourceStatus `json:"sources,omitempty"`
	Ready   bool                    `json:"ready"`
}

// SourceStatus is the readiness of one source.
type SourceStatus struct {
	Error string `json:"error,omitempty"`
	Ready bool   `json:"ready"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures the readiness check.
type Option func(*config)

// WithTimeout bounds the time spent probing all sources.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger logs sources that are not ready.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Check runs every source check in parallel and aggregates the result.
func Check(ctx context.Context, sources Sources, opts ...Option) Report {
	cfg := &config{timeout: defaultTimeout, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(cfg)
	}

	report := Report{Ready: true}
	if len(sources) == 0 {
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	report.Sources = make(map[string]SourceStatus, len(sources))

	for name, check := range sources {
		wg.Go(func() {
			status := SourceStatus{Ready: true}
			if err := check(ctx); err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					err = fmt.Errorf("%w: %w", ErrSourceTimeout, err)
				}
				status = SourceStatus{Error: err.Error()}
				cfg.logger.WarnContext(ctx, "source not ready",
					slog.String("source", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			report.Sources[name] = status
			if !status.Ready {
				report.Ready = false
			}
		})
	}

	wg.Wait()
	return report
}
