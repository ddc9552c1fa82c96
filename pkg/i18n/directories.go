package i18n

import "fmt"

// NamespaceDirectory binds a namespace to the directory holding its bundles.
type NamespaceDirectory struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Directory string `json:"directory" yaml:"directory"`
}

// NamespaceDirectories is an ordered namespace to directory mapping.
// Several namespaces may share a directory; namespaces themselves must be unique.
type NamespaceDirectories []NamespaceDirectory

// Lookup returns the directory registered for the namespace.
func (d NamespaceDirectories) Lookup(namespace string) (string, bool) {
	for _, e := range d {
		if e.Namespace == namespace {
			return e.Directory, true
		}
	}
	return "", false
}

// Namespaces returns the namespaces in mapping order.
func (d NamespaceDirectories) Namespaces() []string {
	out := make([]string, len(d))
	for i, e := range d {
		out[i] = e.Namespace
	}
	return out
}

// Map returns the mapping as a plain map. Order is lost.
func (d NamespaceDirectories) Map() map[string]string {
	out := make(map[string]string, len(d))
	for _, e := range d {
		out[e.Namespace] = e.Directory
	}
	return out
}

// Clone returns a copy that shares no memory with d.
func (d NamespaceDirectories) Clone() NamespaceDirectories {
	if d == nil {
		return nil
	}
	out := make(NamespaceDirectories, len(d))
	copy(out, d)
	return out
}

// Validate reports empty or duplicated namespaces.
func (d NamespaceDirectories) Validate() error {
	seen := make(map[string]struct{}, len(d))
	for _, e := range d {
		if e.Namespace == "" {
			return ErrEmptyNamespace
		}
		if _, dup := seen[e.Namespace]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNamespace, e.Namespace)
		}
		seen[e.Namespace] = struct{}{}
	}
	return nil
}

// Covers returns ErrUnknownNamespace for the first namespace without a directory.
func (d NamespaceDirectories) Covers(namespaces ...string) error {
	for _, ns := range namespaces {
		if _, ok := d.Lookup(ns); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
		}
	}
	return nil
}
