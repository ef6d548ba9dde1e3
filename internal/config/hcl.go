package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/ribokit/riboprep/internal/ctxlog"
)

// HCLLoader is the HCL-specific implementation of the Loader interface. The
// document is a flat set of top-level attributes, mirroring the YAML mapping.
type HCLLoader struct{}

// NewHCLLoader creates a new HCL configuration loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load parses the HCL file at path and converts every top-level attribute to
// a string value.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL configuration %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL configuration %s: %w", path, diags)
	}

	values := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate configuration attribute %q: %w", name, diags)
		}
		if val.Type() != cty.String {
			conv, err := convert.Convert(val, cty.String)
			if err != nil {
				return nil, fmt.Errorf("configuration attribute %q cannot be converted to a string: %w", name, err)
			}
			val = conv
		}
		if val.IsNull() {
			values[name] = ""
			continue
		}
		values[name] = val.AsString()
	}

	logger.Debug("HCL configuration loaded.", "path", path, "keys", len(values))
	return NewDocument(values), nil
}
