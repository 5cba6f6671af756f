// Package schema defines the self-describing descriptors the engine works
// with: faces (named interface identities), imps (named implementations of
// one face), the roles an imp declares, and the founder functions that
// construct component instances. Descriptors are plain values compared by
// label and content; the engine never binds a label to a code symbol.
package schema

import (
	"context"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Face is a named interface identity that imps can implement. Labels are
// globally unique opaque strings, conventionally "<OwningModule>.<name>".
// A Face is immutable once registered.
type Face struct {
	// Label is the face's globally unique identity.
	Label string

	// BareImp, when non-empty, names the imp used to resolve a bare
	// scalar/array charter against this face. Empty means bare charters are
	// not permitted for this face.
	BareImp string

	// Contract optionally carries the Go interface or concrete type a
	// resolved instance of this face is expected to satisfy. It is metadata
	// for tooling; conformance is discovered dynamically, not compiled in.
	Contract reflect.Type
}

// Equal reports whether two face descriptors are interchangeable. Equal
// re-registration under the same label is deduplicated rather than rejected.
func (f *Face) Equal(other *Face) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Label == other.Label &&
		f.BareImp == other.BareImp &&
		f.Contract == other.Contract
}

// Role is a named dependency slot declared by an imp. The component filling
// it must satisfy the named face.
type Role struct {
	// Label is unique within the owning imp.
	Label string

	// Face is the label of the face the filling component must satisfy.
	Face string

	// Optional marks the role as fillable-but-not-required: a charter that
	// omits it produces no sept and no error. Defaulting beyond that is the
	// imp's concern.
	Optional bool
}

// Imp describes a named implementation of exactly one face.
type Imp struct {
	// Label is the imp's globally unique identity, conventionally prefixed
	// by its owning module's name.
	Label string

	// Face is the label of the face this imp implements.
	Face string

	// Roles lists the imp's dependency slots in declaration order. The
	// order fixes the sequence in which role defects are reported.
	Roles []Role
}

// Equal reports whether two imp descriptors are interchangeable. Founder
// functions are not part of descriptor identity.
func (im *Imp) Equal(other *Imp) bool {
	if im == nil || other == nil {
		return im == other
	}
	if im.Label != other.Label || im.Face != other.Face || len(im.Roles) != len(other.Roles) {
		return false
	}
	for i := range im.Roles {
		if im.Roles[i] != other.Roles[i] {
			return false
		}
	}
	return true
}

// Role returns the declared role with the given label, or nil.
func (im *Imp) Role(label string) *Role {
	for i := range im.Roles {
		if im.Roles[i].Label == label {
			return &im.Roles[i]
		}
	}
	return nil
}

// Founder constructs a component instance from a charter's opaque data and
// the already-resolved septs filling the imp's roles. Founders are supplied
// by application modules; the engine owns invoking them correctly and never
// invokes one for a node that recorded a defect. The data value is cty.NilVal
// when the charter carried no data.
type Founder func(ctx context.Context, data cty.Value, septs map[string]any) (any, error)
