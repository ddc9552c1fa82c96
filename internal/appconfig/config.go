// Package appconfig holds the console application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/consolei18n/pkg/logger"
)

// ErrNotInitialized is returned when the holder is read before Set.
var ErrNotInitialized = errors.New("appconfig: configuration is not initialized")

// Config is the console runtime configuration.
type Config struct {
	// AppBase is the base path the console is deployed under, without tenant qualification.
	AppBase          string `env:"APP_BASE" envDefault:"console"`
	HTTPAddr         string `env:"HTTP_ADDR" envDefault:":8080"`
	BundleDir        string `env:"I18N_BUNDLE_DIR" envDefault:"resources/i18n"`
	MetaFile         string `env:"I18N_META_FILE" envDefault:"meta.json"`
	DeploymentConfig string `env:"I18N_DEPLOYMENT_CONFIG"`
	Log              logger.Config
}

// Parse loads the configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Holder is a process-wide configuration holder safe for concurrent use.
type Holder struct {
	cfg atomic.Pointer[Config]
}

// NewHolder returns an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Set publishes cfg. Later reads observe a copy of it.
func (h *Holder) Set(cfg Config) {
	h.cfg.Store(&cfg)
}

// Get returns the published configuration.
func (h *Holder) Get() (Config, error) {
	cfg := h.cfg.Load()
	if cfg == nil {
		return Config{}, ErrNotInitialized
	}
	return *cfg, nil
}

// AppBase returns the deployed base path of the console.
func (h *Holder) AppBase() (string, error) {
	cfg, err := h.Get()
	if err != nil {
		return "", err
	}
	return cfg.AppBase, nil
}
