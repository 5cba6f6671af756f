package registry

import (
	"context"
	"sort"

	"github.com/deansher/morphics-v0.1/internal/ctxlog"
	"github.com/deansher/morphics-v0.1/internal/morph"
)

// Validate performs a strict integrity check over the populated registry
// before it is frozen: every imp's target face must be registered, and
// every role an imp declares must name a registered face. Registration
// ordering among modules is free, so these invariants are only enforceable
// here, after all entrypoints have run.
//
// Defects are recorded into the ambient context in sorted imp-label order so
// diagnostics are reproducible regardless of map iteration.
func (r *Registry) Validate(ctx context.Context, mc *morph.Context) {
	logger := ctxlog.FromContext(ctx)

	labels := make([]string, 0, len(r.imps))
	for label := range r.imps {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		imp := r.imps[label].Imp
		if !r.HasFace(imp.Face) {
			e := morph.Errorf(morph.UnknownFace,
				"imp %q implements unregistered face %q", imp.Label, imp.Face)
			e.Imp = imp.Label
			e.Face = imp.Face
			mc.Record(e)
		}
		for _, role := range imp.Roles {
			if !r.HasFace(role.Face) {
				e := morph.Errorf(morph.UnknownFace,
					"imp %q role %q requires unregistered face %q", imp.Label, role.Label, role.Face)
				e.Imp = imp.Label
				e.Role = role.Label
				e.Face = role.Face
				mc.Record(e)
			}
		}
	}

	// Bare-charter policies must point at a real imp for the same face.
	faceLabels := make([]string, 0, len(r.faces))
	for label := range r.faces {
		faceLabels = append(faceLabels, label)
	}
	sort.Strings(faceLabels)

	for _, label := range faceLabels {
		face := r.faces[label]
		if face.BareImp == "" {
			continue
		}
		reg, ok := r.imps[face.BareImp]
		if !ok {
			e := morph.Errorf(morph.UnknownImp,
				"face %q names unregistered bare-charter imp %q", face.Label, face.BareImp)
			e.Face = face.Label
			e.Imp = face.BareImp
			mc.Record(e)
			continue
		}
		if reg.Imp.Face != face.Label {
			e := morph.Errorf(morph.FaceMismatch,
				"face %q names bare-charter imp %q, which implements face %q",
				face.Label, face.BareImp, reg.Imp.Face)
			e.Face = face.Label
			e.Imp = face.BareImp
			e.ActualFace = reg.Imp.Face
			mc.Record(e)
		}
	}

	logger.Debug("Registry validation finished.",
		"faces", len(r.faces), "imps", len(r.imps), "defects", mc.Len())
}
