package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/deansher/morphics-v0.1/internal/charter"
)

// loadHCL parses an HCL charter file and evaluates its top-level attributes
// into the same cty value space the JSON codec produces, then applies the
// shared shape validation. Charters are static data, so attribute
// expressions are evaluated without variables or functions.
func loadHCL(path string) (*charter.Charter, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL charter file %s: %s", path, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL charter file %s: %s", path, diags.Error())
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q in %s: %s", name, path, diags.Error())
		}
		values[name] = v
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("HCL charter file %s defines no attributes", path)
	}

	return charter.FromValue(cty.ObjectVal(values)), nil
}
