package registry

import (
	"fmt"

	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/schema"
)

// RegisteredImp pairs an imp descriptor with the Go founder that constructs
// its instances.
type RegisteredImp struct {
	Imp     *schema.Imp
	Founder schema.Founder
}

// Registry holds all registered faces, imps, and founders for a single
// engine instance. It is an explicit, passed-by-reference object rather
// than a hidden process global, so tests can build isolated registries.
type Registry struct {
	faces     map[string]*schema.Face
	imps      map[string]*RegisteredImp
	installed map[string]bool
	frozen    bool
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		faces:     make(map[string]*schema.Face),
		imps:      make(map[string]*RegisteredImp),
		installed: make(map[string]bool),
	}
}

// RegisterFace inserts a face descriptor. Registering a descriptor equal to
// an existing one under the same label is a silent no-op; an unequal one
// records a ConflictingRegistration into the ambient context. In
// ErrorCheckOnly mode the conflict check still runs but nothing is mutated.
func (r *Registry) RegisterFace(mc *morph.Context, face *schema.Face) {
	r.mustBeMutable("RegisterFace", face.Label)
	if existing, ok := r.faces[face.Label]; ok {
		if !existing.Equal(face) {
			e := morph.Errorf(morph.ConflictingRegistration,
				"face %q registered twice with different descriptors", face.Label)
			e.Face = face.Label
			mc.Record(e)
		}
		return
	}
	if mc.Degraded() {
		return
	}
	r.faces[face.Label] = face
}

// RegisterImp inserts an imp descriptor and its founder. The same
// dedup-or-conflict rule as RegisterFace applies, keyed by imp label only;
// the imp's target face need not be registered yet (ordering among module
// entrypoints is tolerated, and Validate catches dangling faces before any
// resolution).
func (r *Registry) RegisterImp(mc *morph.Context, imp *schema.Imp, founder schema.Founder) {
	r.mustBeMutable("RegisterImp", imp.Label)
	if existing, ok := r.imps[imp.Label]; ok {
		if !existing.Imp.Equal(imp) {
			e := morph.Errorf(morph.ConflictingRegistration,
				"imp %q registered twice with different descriptors", imp.Label)
			e.Imp = imp.Label
			mc.Record(e)
		}
		return
	}
	if mc.Degraded() {
		return
	}
	r.imps[imp.Label] = &RegisteredImp{Imp: imp, Founder: founder}
}

// Face returns the descriptor for the label, or records UnknownFace into the
// ambient context and returns nil.
func (r *Registry) Face(mc *morph.Context, label string) *schema.Face {
	face, ok := r.faces[label]
	if !ok {
		e := morph.Errorf(morph.UnknownFace, "no face registered under label %q", label)
		e.Face = label
		mc.Record(e)
		return nil
	}
	return face
}

// Imp returns the registration for the label, or records UnknownImp into the
// ambient context and returns nil.
func (r *Registry) Imp(mc *morph.Context, label string) *RegisteredImp {
	reg, ok := r.imps[label]
	if !ok {
		e := morph.Errorf(morph.UnknownImp, "no imp registered under label %q", label)
		e.Imp = label
		mc.Record(e)
		return nil
	}
	return reg
}

// HasFace reports whether a face is registered, without recording a defect.
func (r *Registry) HasFace(label string) bool {
	_, ok := r.faces[label]
	return ok
}

// LookupFace returns the face descriptor for the label without recording a
// defect when it is absent.
func (r *Registry) LookupFace(label string) (*schema.Face, bool) {
	face, ok := r.faces[label]
	return face, ok
}

// LookupImp returns the imp registration for the label without recording a
// defect when it is absent.
func (r *Registry) LookupImp(label string) (*RegisteredImp, bool) {
	reg, ok := r.imps[label]
	return reg, ok
}

// Freeze ends the initialization phase. After Freeze the registry is
// read-only and safe for unsynchronized concurrent reads; further
// registration is a programmer error and panics.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

func (r *Registry) mustBeMutable(op, label string) {
	if r.frozen {
		panic(fmt.Sprintf("registry: %s(%q) after Freeze", op, label))
	}
}
