package charter

import (
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/deansher/morphics-v0.1/internal/morph"
)

// Parse decodes a JSON charter document. Syntactically invalid JSON yields a
// single MalformedCharter node; shape defects inside a syntactically valid
// document are marked per node, as with FromValue.
func Parse(src []byte) *Charter {
	ty, err := ctyjson.ImpliedType(src)
	if err != nil {
		return &Charter{Malformed: morph.Errorf(morph.MalformedCharter,
			"invalid charter JSON: %s", err)}
	}
	v, err := ctyjson.Unmarshal(src, ty)
	if err != nil {
		return &Charter{Malformed: morph.Errorf(morph.MalformedCharter,
			"invalid charter JSON: %s", err)}
	}
	return FromValue(v)
}

// MarshalData encodes an opaque charter payload back to JSON, primarily for
// presenting resolved values. cty.NilVal encodes as JSON null.
func MarshalData(v cty.Value) ([]byte, error) {
	if v == cty.NilVal {
		return []byte("null"), nil
	}
	return ctyjson.Marshal(v, v.Type())
}
