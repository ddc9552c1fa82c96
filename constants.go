package consolei18n

import "github.com/dmitrymomot/consolei18n/pkg/i18n"

// Namespace tokens of the console portals.
const (
	AdminPortalNamespace = i18n.AdminPortalNamespace
	DevPortalNamespace   = i18n.DevPortalNamespace
	CommonNamespace      = i18n.CommonNamespace
)

// Engine flags.
const (
	// InitOptionsOverride replaces the engine default options instead of merging over them.
	InitOptionsOverride = false
	// LangAutoDetectEnabled enables the language detector plugin.
	LangAutoDetectEnabled = true
	// XHRBackendPluginEnabled enables fetching bundles over HTTP.
	XHRBackendPluginEnabled = true
)

// BundleDirectory is the directory that holds the portal bundles.
const BundleDirectory = "portals"

// All namespaces share one bundle directory.
// TODO: confirm with product whether adminPortal and devPortal get their own directories.
var bundleNamespaceDirectories = i18n.NamespaceDirectories{
	{Namespace: CommonNamespace, Directory: BundleDirectory},
	{Namespace: AdminPortalNamespace, Directory: BundleDirectory},
	{Namespace: DevPortalNamespace, Directory: BundleDirectory},
}

// namespaces is the load order of the portal namespaces.
var namespaces = []string{CommonNamespace, AdminPortalNamespace, DevPortalNamespace}

// BundleNamespaceDirectories returns the namespace to bundle directory mapping.
// Namespaces share directories; callers must not assume they are distinct.
func BundleNamespaceDirectories() i18n.NamespaceDirectories {
	return bundleNamespaceDirectories.Clone()
}

// Namespaces returns the namespaces loaded at startup, in load order.
func Namespaces() []string {
	out := make([]string, len(namespaces))
	copy(out, namespaces)
	return out
}
