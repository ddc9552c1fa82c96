// Command consolei18n resolves and serves the console i18n bundles.
//
// Usage:
//
//	consolei18n paths [-lang en-US]...   print the bundle paths the console requests
//	consolei18n serve                    serve bundles with liveness and readiness endpoints
//
// Configuration is read from the environment (APP_BASE, HTTP_ADDR,
// I18N_BUNDLE_DIR, I18N_META_FILE, I18N_DEPLOYMENT_CONFIG, LOG_LEVEL, SENTRY_DSN).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/consolei18n"
	"github.com/dmitrymomot/consolei18n/internal/appconfig"
	"github.com/dmitrymomot/consolei18n/internal/bundleserver"
	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "consolei18n:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: consolei18n <paths|serve> [flags]")
	}

	cfg, err := appconfig.Parse()
	if err != nil {
		return err
	}

	log := logger.FromConfig(cfg.Log,
		logger.Static("app_base", cfg.AppBase),
		logger.BundleExtractor(),
		bundleserver.RequestIDExtractor(),
	)

	switch args[0] {
	case "paths":
		return runPaths(cfg, log, args[1:], stdout)
	case "serve":
		return runServe(cfg, log)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

type languagesFlag []string

func (f *languagesFlag) String() string { return strings.Join(*f, ",") }

func (f *languagesFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func runPaths(cfg appconfig.Config, log *slog.Logger, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("paths", flag.ContinueOnError)
	var langs languagesFlag
	flags.Var(&langs, "lang", "language tag to resolve (repeatable, defaults to the deployed languages)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	env, err := bootstrap(cfg, log)
	if err != nil {
		return err
	}

	report, err := resolvePaths(env, langs...)
	if err != nil {
		logPathError(context.Background(), log, err)
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func runServe(cfg appconfig.Config, log *slog.Logger) error {
	env, err := bootstrap(cfg, log)
	if err != nil {
		return err
	}

	if _, err := consolei18n.Setup(env.app, env.store); err != nil {
		return err
	}

	handler, err := bundleserver.New(bundleserver.Config{
		Bundles: env.bundles,
		App:     env.app,
		State:   env.store,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return bundleserver.Run(ctx, cfg.HTTPAddr, handler, log)
}
