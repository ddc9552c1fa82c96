package i18n

import "path"

// GenerateBackendPaths builds the URL path of a namespace bundle for a language.
//
// When the language metadata lists a file for the namespace, that file is used:
//
//	/{appBase}/{resourcePath}/{language}/{metadata path}
//
// Otherwise the path is derived from the namespace directory mapping:
//
//	/{appBase}/{resourcePath}/{language}/{directory}/{namespace}.json
//
// A namespace without a directory yields a path without the directory segment.
// The function performs no I/O.
func GenerateBackendPaths(language, namespace, appBase string, cfg LocaleConfig) string {
	resourcePath := cfg.ResolvedResourcePath()

	if meta, ok := cfg.Metadata[language]; ok {
		if file, ok := meta.Paths[namespace]; ok && file != "" {
			return path.Join("/", appBase, resourcePath, language, file)
		}
	}

	dir, _ := cfg.NamespaceDirectories.Lookup(namespace)
	return path.Join("/", appBase, resourcePath, language, dir, namespace+bundleFileExt)
}

// ResourcePrefix returns the URL prefix under which all bundles of appBase live.
func ResourcePrefix(appBase string, cfg LocaleConfig) string {
	return path.Join("/", appBase, cfg.ResolvedResourcePath())
}
