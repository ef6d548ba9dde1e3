package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ribokit/riboprep/internal/ctxlog"
)

// YAMLLoader is the YAML-specific implementation of the Loader interface.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML configuration loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load reads and decodes a YAML mapping. Scalar values of any YAML type are
// rendered to strings, since the pipeline passes them through to command
// lines verbatim.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration %s: %w", path, err)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		switch t := v.(type) {
		case string:
			values[key] = t
		case nil:
			values[key] = ""
		default:
			values[key] = fmt.Sprintf("%v", t)
		}
	}

	logger.Debug("YAML configuration loaded.", "path", path, "keys", len(values))
	return NewDocument(values), nil
}
