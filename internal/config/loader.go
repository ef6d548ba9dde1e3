package config

import (
	"context"
	"path/filepath"
	"strings"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration document at path and translates it into
	// the format-agnostic Document model.
	Load(ctx context.Context, path string) (*Document, error)
}

// LoaderFor selects a loader by file extension. ".hcl" selects the HCL
// loader; everything else is treated as YAML, the canonical format.
func LoaderFor(path string) Loader {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return NewHCLLoader()
	}
	return NewYAMLLoader()
}
