package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadMetadata reads language metadata from a JSON or YAML file in an fs.FS.
// The format is chosen by extension: .json, .yaml or .yml.
//
// Example meta.json:
//
//	{
//	  "en-US": {
//	    "code": "en-US",
//	    "name": "English",
//	    "paths": {"common": "portals/common.4f2a1c.json"}
//	  }
//	}
func LoadMetadata(fsys fs.FS, name string) (Metadata, error) {
	var unmarshal func([]byte, any) error

	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: unsupported file %q", ErrInvalidMetadata, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	var meta Metadata
	if err := unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidMetadata, name, err)
	}

	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}

	return meta, nil
}
