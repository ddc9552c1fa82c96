package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/consolei18n"
	"github.com/dmitrymomot/consolei18n/internal/appconfig"
	"github.com/dmitrymomot/consolei18n/internal/store"
	"github.com/dmitrymomot/consolei18n/pkg/i18n"
	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

// environment is the initialized console state the commands run against.
type environment struct {
	app     *appconfig.Holder
	store   *store.Store
	bundles fs.FS
}

// bootstrap publishes the app config and the locale state.
// A missing meta file is tolerated; the directory mapping is used alone.
func bootstrap(cfg appconfig.Config, log *slog.Logger) (*environment, error) {
	bundles := os.DirFS(cfg.BundleDir)

	meta, err := i18n.LoadMetadata(bundles, cfg.MetaFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("language metadata not found", slog.String("dir", cfg.BundleDir), slog.String("file", cfg.MetaFile))
		meta = nil
	case err != nil:
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	localeCfg := consolei18n.LocaleConfig(meta)

	if cfg.DeploymentConfig != "" {
		d, err := store.LoadDeployment(os.DirFS(filepath.Dir(cfg.DeploymentConfig)), filepath.Base(cfg.DeploymentConfig))
		if err != nil {
			return nil, fmt.Errorf("load deployment config: %w", err)
		}
		localeCfg = d.Apply(localeCfg)
	}

	if err := localeCfg.Validate(); err != nil {
		return nil, err
	}

	env := &environment{
		app:     appconfig.NewHolder(),
		store:   store.New(),
		bundles: bundles,
	}
	env.app.Set(cfg)
	env.store.SetI18nConfig(localeCfg)

	log.Info("i18n configured",
		slog.String("resource_path", localeCfg.ResolvedResourcePath()),
		slog.Any("languages", localeCfg.Metadata.Languages()),
	)

	return env, nil
}

// pathsReport is the output of the paths command.
type pathsReport struct {
	AppBase    string   `json:"appBase"`
	Load       string   `json:"load"`
	Namespaces []string `json:"namespaces"`
	Plugins    []string `json:"plugins"`
	Languages  []string `json:"languages"`
	Paths      []string `json:"paths"`
}

func resolvePaths(env *environment, langs ...string) (pathsReport, error) {
	setup, err := consolei18n.Setup(env.app, env.store)
	if err != nil {
		return pathsReport{}, err
	}

	if len(langs) == 0 {
		localeCfg, err := env.store.I18nConfig()
		if err != nil {
			return pathsReport{}, err
		}
		langs = localeCfg.Metadata.Languages()
	}
	if len(langs) == 0 {
		langs = []string{i18n.DefaultLanguage}
	}

	paths, err := setup.ResourcePaths(langs...)
	if err != nil {
		return pathsReport{}, err
	}

	appBase, err := env.app.AppBase()
	if err != nil {
		return pathsReport{}, err
	}

	opts := setup.Options()
	return pathsReport{
		AppBase:    appBase,
		Load:       string(opts.Load),
		Namespaces: opts.NS,
		Plugins:    setup.Plugins(),
		Languages:  langs,
		Paths:      paths,
	}, nil
}

// logPathError logs a failed bundle path with the language and namespace the
// loader asked for.
func logPathError(ctx context.Context, log *slog.Logger, err error) {
	var pathErr *i18n.LoadPathError
	if errors.As(err, &pathErr) {
		ctx = logger.WithBundle(ctx, pathErr.Language, pathErr.Namespace)
	}
	log.ErrorContext(ctx, "resolve bundle paths failed", slog.String("error", err.Error()))
}
