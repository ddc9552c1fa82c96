package store

import (
	"fmt"
	"io/fs"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/consolei18n/pkg/i18n"
)

// Deployment is the deployment configuration file.
//
// Example:
//
//	i18n:
//	  resourcePath: resources/i18n
//	  languages:
//	    en-US:
//	      code: en-US
//	      name: English
type Deployment struct {
	I18n DeploymentI18n `yaml:"i18n"`
}

// DeploymentI18n is the i18n block of the deployment configuration.
type DeploymentI18n struct {
	Languages    i18n.Metadata `yaml:"languages"`
	ResourcePath string        `yaml:"resourcePath"`
}

// LoadDeployment reads and validates a YAML deployment configuration.
func LoadDeployment(fsys fs.FS, name string) (Deployment, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Deployment{}, fmt.Errorf("reading %q: %w", name, err)
	}

	var d Deployment
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Deployment{}, fmt.Errorf("parsing %q: %w", name, err)
	}

	if err := d.I18n.Languages.Validate(); err != nil {
		return Deployment{}, fmt.Errorf("%q: %w", name, err)
	}

	return d, nil
}

// Apply returns base with the deployment overrides applied.
// Deployment languages replace base entries with the same tag.
func (d Deployment) Apply(base i18n.LocaleConfig) i18n.LocaleConfig {
	out := base.Clone()
	if d.I18n.ResourcePath != "" {
		out.ResourcePath = d.I18n.ResourcePath
	}
	if len(d.I18n.Languages) > 0 {
		if out.Metadata == nil {
			out.Metadata = make(i18n.Metadata, len(d.I18n.Languages))
		}
		maps.Copy(out.Metadata, d.I18n.Languages.Clone())
	}
	return out
}
