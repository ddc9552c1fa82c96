package i18n

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// Engine plugin names reported by Setup.Plugins.
const (
	PluginLanguageDetector = "languageDetector"
	PluginHTTPBackend      = "httpBackend"
)

// Setup is the resolved engine configuration handed over at startup.
// It is immutable once built.
type Setup struct {
	options          InitOptions
	languageDetector bool
	httpBackend      bool
}

// NewSetup resolves the engine configuration.
// Unless override is set, custom is merged over DefaultInitOptions and its
// non-zero fields win. With override, custom replaces the defaults entirely.
func NewSetup(custom InitOptions, override, detect, httpBackend bool) (Setup, error) {
	opts := custom.clone()
	if !override {
		opts = custom.mergeOver(DefaultInitOptions())
	}

	if err := opts.Validate(); err != nil {
		return Setup{}, fmt.Errorf("invalid init options: %w", err)
	}
	if httpBackend && opts.Backend.LoadPath == nil {
		return Setup{}, ErrNoLoadPath
	}

	return Setup{
		options:          opts,
		languageDetector: detect,
		httpBackend:      httpBackend,
	}, nil
}

// Options returns a copy of the resolved init options.
func (s Setup) Options() InitOptions {
	return s.options.clone()
}

// LanguageDetectorEnabled reports whether the detector plugin is active.
func (s Setup) LanguageDetectorEnabled() bool {
	return s.languageDetector
}

// HTTPBackendEnabled reports whether bundles are fetched over HTTP.
func (s Setup) HTTPBackendEnabled() bool {
	return s.httpBackend
}

// Plugins returns the names of the enabled plugins.
func (s Setup) Plugins() []string {
	var out []string
	if s.languageDetector {
		out = append(out, PluginLanguageDetector)
	}
	if s.httpBackend {
		out = append(out, PluginHTTPBackend)
	}
	return out
}

// Codes expands the given languages into the codes requested under the load strategy.
// The result keeps first-seen order and has no duplicates.
func (s Setup) Codes(languages ...string) ([]string, error) {
	var codes []string
	add := func(code string) {
		if !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}

	for _, lng := range languages {
		if lng == "" {
			return nil, ErrEmptyLanguage
		}
		base, err := baseLanguage(lng)
		if err != nil {
			return nil, err
		}
		switch s.options.Load {
		case LoadCurrentOnly:
			add(lng)
		case LoadLanguageOnly:
			add(base)
		default:
			add(lng)
			add(base)
		}
	}

	if s.options.Load == LoadAll {
		for _, lng := range s.options.FallbackLng {
			add(lng)
		}
	}

	return codes, nil
}

// ResourcePaths returns the bundle paths the HTTP backend would request for
// the given languages, ordered by language then namespace.
func (s Setup) ResourcePaths(languages ...string) ([]string, error) {
	if !s.httpBackend || s.options.Backend.LoadPath == nil {
		return nil, ErrNoLoadPath
	}

	codes, err := s.Codes(languages...)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(codes)*len(s.options.NS))
	for _, code := range codes {
		for _, ns := range s.options.NS {
			p, err := s.options.Backend.LoadPath(code, ns)
			if err != nil {
				return nil, &LoadPathError{Language: code, Namespace: ns, Err: err}
			}
			if !slices.Contains(paths, p) {
				paths = append(paths, p)
			}
		}
	}
	return paths, nil
}

// baseLanguage returns the base language subtag ("en" for "en-US").
func baseLanguage(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("i18n: parse language %q: %w", tag, err)
	}
	base, _ := t.Base()
	return base.String(), nil
}
