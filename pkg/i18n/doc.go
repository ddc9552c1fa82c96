// Package i18n holds the configuration contract of the console localization
// engine: namespace tokens, the init options record, the backend path
// generator and the resolved engine setup.
//
// The package builds configuration only. It does not translate, cache or
// fetch bundles; the HTTP layer requests the paths it produces.
//
// # Namespaces
//
// Bundles are grouped by namespace. The console ships three:
//
//	i18n.CommonNamespace      // "common"
//	i18n.AdminPortalNamespace // "adminPortal"
//	i18n.DevPortalNamespace   // "devPortal"
//
// Each namespace is bound to a bundle directory through an ordered
// [NamespaceDirectories] mapping. Namespaces may share a directory.
//
// # Backend Paths
//
// [GenerateBackendPaths] composes the URL path of a bundle from the language,
// namespace, application base path and [LocaleConfig]:
//
//	cfg := i18n.LocaleConfig{
//		NamespaceDirectories: i18n.NamespaceDirectories{
//			{Namespace: i18n.CommonNamespace, Directory: "portals"},
//		},
//	}
//
//	p := i18n.GenerateBackendPaths("en-US", i18n.CommonNamespace, "console", cfg)
//	// "/console/resources/i18n/en-US/portals/common.json"
//
// Language metadata loaded with [LoadMetadata] may list explicit file names
// per namespace, which take precedence over the directory mapping.
//
// # Engine Setup
//
// [NewSetup] merges custom [InitOptions] over [DefaultInitOptions] (or
// replaces them when override is set), validates the result and records
// which plugins are enabled:
//
//	setup, err := i18n.NewSetup(i18n.InitOptions{
//		Backend: i18n.BackendOptions{LoadPath: loadPath},
//		Load:    i18n.LoadCurrentOnly,
//		NS:      []string{i18n.CommonNamespace},
//	}, false, true, true)
//
//	paths, err := setup.ResourcePaths("en-US")
//
// With [LoadCurrentOnly] only the exact tag is requested, so no request is
// made for the base language ("en") when only "en-US" bundles are deployed.
//
// # Thread Safety
//
// Setup and the helpers in this package never mutate their inputs and are
// safe for concurrent use.
package i18n
