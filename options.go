package consolei18n

import (
	"fmt"

	"github.com/dmitrymomot/consolei18n/pkg/i18n"
)

// AppConfigSource provides the deployed application base path.
type AppConfigSource interface {
	AppBase() (string, error)
}

// StateSource provides the locale configuration of the console state.
type StateSource interface {
	I18nConfig() (i18n.LocaleConfig, error)
}

// ResolveBackendPath returns the path of the bundle for language and namespace.
// It delegates to i18n.GenerateBackendPaths and performs no I/O.
func ResolveBackendPath(language, namespace, appBase string, cfg i18n.LocaleConfig) string {
	return i18n.GenerateBackendPaths(language, namespace, appBase, cfg)
}

// ModuleInitOptions returns the engine init options of the console.
//
// The backend loader reads app and st on every call. Source errors are returned
// wrapped; a namespace missing from the locale directory mapping yields
// i18n.ErrUnknownNamespace instead of a path without a directory.
//
// Only the exact locale is loaded (en-US, never en), since only exact locale
// bundles are deployed.
func ModuleInitOptions(app AppConfigSource, st StateSource) i18n.InitOptions {
	return i18n.InitOptions{
		Backend: i18n.BackendOptions{
			LoadPath: func(language, namespace string) (string, error) {
				appBase, err := app.AppBase()
				if err != nil {
					return "", fmt.Errorf("app base: %w", err)
				}
				cfg, err := st.I18nConfig()
				if err != nil {
					return "", fmt.Errorf("i18n config: %w", err)
				}
				// A bundle file listed in the language metadata needs no directory.
				if cfg.Metadata[language].Paths[namespace] == "" {
					if err := cfg.NamespaceDirectories.Covers(namespace); err != nil {
						return "", err
					}
				}
				return ResolveBackendPath(language, namespace, appBase, cfg), nil
			},
		},
		Load: i18n.LoadCurrentOnly,
		NS:   Namespaces(),
	}
}

// LocaleConfig returns the locale configuration the console publishes to its
// state at startup, carrying the given language metadata.
func LocaleConfig(meta i18n.Metadata) i18n.LocaleConfig {
	return i18n.LocaleConfig{
		ResourcePath:            i18n.LocalizationFilesBasePath,
		NamespaceDirectories:    BundleNamespaceDirectories(),
		Metadata:                meta.Clone(),
		LangAutoDetectEnabled:   LangAutoDetectEnabled,
		OverrideOptions:         InitOptionsOverride,
		XHRBackendPluginEnabled: XHRBackendPluginEnabled,
	}
}

// Setup resolves the engine configuration from ModuleInitOptions and the engine flags.
func Setup(app AppConfigSource, st StateSource) (i18n.Setup, error) {
	return i18n.NewSetup(
		ModuleInitOptions(app, st),
		InitOptionsOverride,
		LangAutoDetectEnabled,
		XHRBackendPluginEnabled,
	)
}
