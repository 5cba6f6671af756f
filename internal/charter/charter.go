package charter

import (
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/deansher/morphics-v0.1/internal/morph"
)

// Charter describes how to build one component. It is the parsed,
// shape-validated form of the JSON wire format:
//
//	{ "imp": "<ownerModule>.<impName>", "roles": {...}, "data": <any> }
type Charter struct {
	// Imp is the label of the implementation to construct. Empty for bare
	// charters.
	Imp string

	// Roles maps role labels to the sub-charters filling them.
	Roles map[string]*Charter

	// Data is the opaque payload handed to the founder untouched;
	// cty.NilVal when the charter carries none. For bare charters it is the
	// raw value itself.
	Data cty.Value

	// Bare marks a charter that was a raw scalar or array rather than an
	// object with an imp field. Such charters resolve through the target
	// face's bare-charter policy.
	Bare bool

	// Malformed records a shape defect found at this node. A malformed node
	// cannot be resolved, but its siblings still can: the engine reports the
	// defect in role-path context and moves on.
	Malformed *morph.Error
}

// RoleLabels returns the charter's supplied role labels in sorted order,
// for reproducible diagnostics over the unordered map.
func (c *Charter) RoleLabels() []string {
	labels := make([]string, 0, len(c.Roles))
	for label := range c.Roles {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// FromValue validates a charter's shape and converts it into a Charter
// tree. Shape defects never fail the conversion as a whole: each malformed
// node is marked and kept in place, so one resolution pass can report every
// defective node while still descending into well-formed siblings.
func FromValue(v cty.Value) *Charter {
	if v == cty.NilVal || v.IsNull() {
		return &Charter{Malformed: morph.Errorf(morph.MalformedCharter,
			"charter must not be null")}
	}
	if !v.Type().IsObjectType() {
		// A raw scalar or array is a bare charter for faces that allow it.
		return &Charter{Data: v, Bare: true}
	}

	ty := v.Type()
	for name := range ty.AttributeTypes() {
		switch name {
		case "imp", "roles", "data":
		default:
			return &Charter{Malformed: morph.Errorf(morph.MalformedCharter,
				"charter object has unexpected field %q", name)}
		}
	}

	if !ty.HasAttribute("imp") {
		return &Charter{Malformed: morph.Errorf(morph.MalformedCharter,
			"charter object is missing the \"imp\" field")}
	}
	impVal := v.GetAttr("imp")
	if impVal.IsNull() || impVal.Type() != cty.String {
		return &Charter{Malformed: morph.Errorf(morph.MalformedCharter,
			"charter \"imp\" field must be a string")}
	}

	ch := &Charter{Imp: impVal.AsString(), Data: cty.NilVal}

	if ty.HasAttribute("roles") {
		rolesVal := v.GetAttr("roles")
		if rolesVal.IsNull() || !(rolesVal.Type().IsObjectType() || rolesVal.Type().IsMapType()) {
			ch.Malformed = morph.Errorf(morph.MalformedCharter,
				"charter \"roles\" field must be an object")
			return ch
		}
		ch.Roles = make(map[string]*Charter)
		for it := rolesVal.ElementIterator(); it.Next(); {
			key, sub := it.Element()
			ch.Roles[key.AsString()] = FromValue(sub)
		}
	}

	if ty.HasAttribute("data") {
		ch.Data = v.GetAttr("data")
	}

	return ch
}
