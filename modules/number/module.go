package number

import (
	"context"
	"errors"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/registry"
	"github.com/deansher/morphics-v0.1/internal/schema"
)

// FaceLabel identifies the number face: a component that simply is a
// float64 value.
const FaceLabel = "Morphics.Number"

// ImpNumber identifies the literal-number imp, which wraps a charter's
// numeric data unchanged. It is also the face's bare-charter imp, so a raw
// JSON number is a complete charter for this face.
const ImpNumber = "Morphics.Number.number"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "Morphics.Number" }

// Requires implements registry.Module. The number module stands alone.
func (m *Module) Requires() []registry.Module { return nil }

// Register registers the number face and its literal imp.
func (m *Module) Register(mc *morph.Context, r *registry.Registry) {
	r.RegisterFace(mc, &schema.Face{
		Label:    FaceLabel,
		BareImp:  ImpNumber,
		Contract: reflect.TypeOf(float64(0)),
	})
	r.RegisterImp(mc, &schema.Imp{
		Label: ImpNumber,
		Face:  FaceLabel,
	}, foundNumber)
}

// foundNumber is the founder for the literal-number imp: the charter's data
// value, converted to float64.
func foundNumber(_ context.Context, data cty.Value, _ map[string]any) (any, error) {
	if data == cty.NilVal || data.IsNull() {
		return nil, errors.New("number charter requires a numeric data value")
	}
	conv, err := convert.Convert(data, cty.Number)
	if err != nil {
		return nil, err
	}
	var f float64
	if err := gocty.FromCtyValue(conv, &f); err != nil {
		return nil, err
	}
	return f, nil
}
