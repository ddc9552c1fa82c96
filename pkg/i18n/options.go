package i18n

import (
	"fmt"
	"slices"
)

// LoadStrategy selects which language codes the engine requests bundles for.
type LoadStrategy string

const (
	// LoadAll requests the exact tag, its base language and the fallbacks ("en-US", "en", ...).
	LoadAll LoadStrategy = "all"
	// LoadCurrentOnly requests only the exact tag.
	LoadCurrentOnly LoadStrategy = "currentOnly"
	// LoadLanguageOnly requests only the base language.
	LoadLanguageOnly LoadStrategy = "languageOnly"
)

// Valid reports whether s is a known strategy.
func (s LoadStrategy) Valid() bool {
	switch s {
	case LoadAll, LoadCurrentOnly, LoadLanguageOnly:
		return true
	}
	return false
}

// LoadPathFunc returns the path of the bundle for a language and namespace.
type LoadPathFunc func(language, namespace string) (string, error)

// BackendOptions configures the HTTP backend plugin.
type BackendOptions struct {
	LoadPath LoadPathFunc
}

// InitOptions configures the i18n engine.
type InitOptions struct {
	Backend     BackendOptions
	Load        LoadStrategy
	DefaultNS   string
	NS          []string
	FallbackLng []string
}

// DefaultInitOptions returns the engine defaults that custom options are merged over.
func DefaultInitOptions() InitOptions {
	return InitOptions{
		Load:        LoadAll,
		NS:          []string{CommonNamespace},
		DefaultNS:   CommonNamespace,
		FallbackLng: []string{DefaultLanguage},
	}
}

// Validate checks the options. The load path is checked by NewSetup,
// since it is only required when the HTTP backend is enabled.
func (o InitOptions) Validate() error {
	if !o.Load.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLoadStrategy, o.Load)
	}
	if len(o.NS) == 0 {
		return ErrEmptyNamespace
	}
	seen := make(map[string]struct{}, len(o.NS))
	for _, ns := range o.NS {
		if ns == "" {
			return ErrEmptyNamespace
		}
		if _, dup := seen[ns]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNamespace, ns)
		}
		seen[ns] = struct{}{}
	}
	if o.DefaultNS != "" && !slices.Contains(o.NS, o.DefaultNS) {
		return fmt.Errorf("%w: %q", ErrDefaultNamespace, o.DefaultNS)
	}
	for _, lng := range o.FallbackLng {
		if lng == "" {
			return fmt.Errorf("%w: fallback language", ErrEmptyLanguage)
		}
	}
	return nil
}

// mergeOver returns o with every zero field taken from base.
func (o InitOptions) mergeOver(base InitOptions) InitOptions {
	out := base
	if o.Backend.LoadPath != nil {
		out.Backend.LoadPath = o.Backend.LoadPath
	}
	if o.Load != "" {
		out.Load = o.Load
	}
	if len(o.NS) > 0 {
		out.NS = o.NS
		if o.DefaultNS == "" && !slices.Contains(o.NS, out.DefaultNS) {
			out.DefaultNS = o.NS[0]
		}
	}
	if o.DefaultNS != "" {
		out.DefaultNS = o.DefaultNS
	}
	if len(o.FallbackLng) > 0 {
		out.FallbackLng = o.FallbackLng
	}
	return out.clone()
}

func (o InitOptions) clone() InitOptions {
	o.NS = slices.Clone(o.NS)
	o.FallbackLng = slices.Clone(o.FallbackLng)
	return o
}
