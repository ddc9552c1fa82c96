package i18n

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// LanguageMeta describes one deployed language.
// Paths maps a namespace to its bundle file relative to the language directory,
// which lets a deployment publish content-hashed file names.
type LanguageMeta struct {
	Paths map[string]string `json:"paths,omitempty" yaml:"paths,omitempty"`
	Code  string            `json:"code" yaml:"code"`
	Name  string            `json:"name" yaml:"name"`
	Flag  string            `json:"flag,omitempty" yaml:"flag,omitempty"`
}

// Metadata maps a language tag to its metadata.
type Metadata map[string]LanguageMeta

// Languages returns the deployed language tags in sorted order.
func (m Metadata) Languages() []string {
	return slices.Sorted(maps.Keys(m))
}

// Validate checks that every key is a well-formed BCP 47 tag and matches its Code,
// and that every bundle file is a relative slash-separated path that stays
// inside the language directory.
func (m Metadata) Validate() error {
	for tag, meta := range m {
		if tag == "" {
			return fmt.Errorf("%w: %w", ErrInvalidMetadata, ErrEmptyLanguage)
		}
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("%w: language %q: %s", ErrInvalidMetadata, tag, err)
		}
		if meta.Code != "" && meta.Code != tag {
			return fmt.Errorf("%w: language %q declares code %q", ErrInvalidMetadata, tag, meta.Code)
		}
		for ns, file := range meta.Paths {
			if ns == "" {
				return fmt.Errorf("%w: language %q: %w", ErrInvalidMetadata, tag, ErrEmptyNamespace)
			}
			if !fs.ValidPath(file) || file == "." {
				return fmt.Errorf("%w: language %q namespace %q: invalid bundle file %q", ErrInvalidMetadata, tag, ns, file)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of m.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for tag, meta := range m {
		meta.Paths = maps.Clone(meta.Paths)
		out[tag] = meta
	}
	return out
}

// LocaleConfig is the locale section of the console state.
// It feeds GenerateBackendPaths and carries the engine plugin flags.
type LocaleConfig struct {
	Metadata                Metadata             `json:"metadata,omitempty" yaml:"languages,omitempty"`
	ResourcePath            string               `json:"resourcePath,omitempty" yaml:"resourcePath,omitempty"`
	NamespaceDirectories    NamespaceDirectories `json:"namespaceDirectories,omitempty" yaml:"namespaceDirectories,omitempty"`
	LangAutoDetectEnabled   bool                 `json:"langAutoDetectEnabled" yaml:"langAutoDetectEnabled"`
	OverrideOptions         bool                 `json:"overrideOptions" yaml:"overrideOptions"`
	XHRBackendPluginEnabled bool                 `json:"xhrBackendPluginEnabled" yaml:"xhrBackendPluginEnabled"`
}

// ResolvedResourcePath returns the configured resource path or LocalizationFilesBasePath.
func (c LocaleConfig) ResolvedResourcePath() string {
	if c.ResourcePath == "" {
		return LocalizationFilesBasePath
	}
	return c.ResourcePath
}

// Validate checks the directory mapping and the metadata.
func (c LocaleConfig) Validate() error {
	if err := c.NamespaceDirectories.Validate(); err != nil {
		return err
	}
	return c.Metadata.Validate()
}

// Clone returns a deep copy of c.
func (c LocaleConfig) Clone() LocaleConfig {
	c.Metadata = c.Metadata.Clone()
	c.NamespaceDirectories = c.NamespaceDirectories.Clone()
	return c
}
