package itemorder

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/registry"
	"github.com/deansher/morphics-v0.1/internal/schema"
	"github.com/deansher/morphics-v0.1/modules/number"
)

// FaceLabel identifies the item-ordering face: a function that orders a
// slice of items.
const FaceLabel = "Morphics.ItemOrder"

// ImpOrderByBlend identifies the blend-scoring imp. It orders items by a
// weighted blend of their weight and size, with the two coefficients
// supplied as number septs.
const ImpOrderByBlend = "Morphics.ItemOrder.orderByBlend"

// Item is one orderable element.
type Item struct {
	Label  string
	Weight float64
	Size   float64
}

// OrderFunc is the component contract for the item-ordering face: it
// returns the items in order without mutating its input.
type OrderFunc func(items []Item) []Item

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "Morphics.ItemOrder" }

// Requires implements registry.Module. The blend imp's roles are filled by
// number components, so the number module's registrations must be in place.
func (m *Module) Requires() []registry.Module {
	return []registry.Module{&number.Module{}}
}

// Register registers the item-ordering face and the blend imp.
func (m *Module) Register(mc *morph.Context, r *registry.Registry) {
	r.RegisterFace(mc, &schema.Face{
		Label:    FaceLabel,
		Contract: reflect.TypeOf(OrderFunc(nil)),
	})
	r.RegisterImp(mc, &schema.Imp{
		Label: ImpOrderByBlend,
		Face:  FaceLabel,
		Roles: []schema.Role{
			{Label: "w", Face: number.FaceLabel},
			{Label: "s", Face: number.FaceLabel},
		},
	}, foundOrderByBlend)
}

// foundOrderByBlend builds an OrderFunc that sorts ascending by
// w*item.Weight + s*item.Size. Ties keep their input order.
func foundOrderByBlend(_ context.Context, _ cty.Value, septs map[string]any) (any, error) {
	w, ok := septs["w"].(float64)
	if !ok {
		return nil, fmt.Errorf("role \"w\" resolved to %T, want float64", septs["w"])
	}
	s, ok := septs["s"].(float64)
	if !ok {
		return nil, fmt.Errorf("role \"s\" resolved to %T, want float64", septs["s"])
	}

	score := func(it Item) float64 { return w*it.Weight + s*it.Size }
	return OrderFunc(func(items []Item) []Item {
		ordered := append([]Item(nil), items...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return score(ordered[i]) < score(ordered[j])
		})
		return ordered
	}), nil
}
