package resolver

import (
	"context"

	"github.com/deansher/morphics-v0.1/internal/charter"
	"github.com/deansher/morphics-v0.1/internal/ctxlog"
	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/registry"
	"github.com/deansher/morphics-v0.1/internal/schema"
)

// DefaultMaxDepth bounds charter recursion when the caller does not
// configure a limit. Real charters are shallow; the bound exists so a
// runaway self-referential founder fails with ChartersTooDeep instead of
// exhausting the stack.
const DefaultMaxDepth = 64

// Engine resolves charters against a frozen registry.
type Engine struct {
	reg *registry.Registry

	// MaxDepth is the maximum charter nesting depth before resolution fails
	// with ChartersTooDeep.
	MaxDepth int
}

// New creates an Engine over the given registry. The registry must already
// be frozen: resolution assumes lock-free reads, and an unfrozen registry is
// a lifecycle bug, so Resolve panics on one.
func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg, MaxDepth: DefaultMaxDepth}
}

// Resolve builds a clan of the given face from the charter. It returns
// either a fully constructed clan and a nil error list, or a nil clan and
// the ordered list of every defect one pass could discover. There is no
// partial success: a non-empty error list always means no clan, even when
// unrelated subtrees resolved cleanly before the first defect.
func (e *Engine) Resolve(ctx context.Context, faceLabel string, ch *charter.Charter) (*schema.Clan, []*morph.Error) {
	mc := morph.NewContext()
	clan := e.ResolveInto(ctx, mc, faceLabel, ch)
	if !mc.OK() {
		return nil, mc.Errors()
	}
	return clan, nil
}

// ResolveInto is Resolve for callers that thread their own per-pass
// morph.Context, for example to accumulate defects across several charters
// into one report. The context must not be shared with a concurrent pass.
func (e *Engine) ResolveInto(ctx context.Context, mc *morph.Context, faceLabel string, ch *charter.Charter) *schema.Clan {
	if !e.reg.Frozen() {
		panic("resolver: Resolve called before registry.Freeze")
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolution pass started.", "face", faceLabel)

	if _, ok := e.reg.LookupFace(faceLabel); !ok {
		err := morph.Errorf(morph.UnknownFace, "no face registered under label %q", faceLabel)
		err.Face = faceLabel
		mc.Record(err)
		return nil
	}

	clan := e.resolveNode(ctx, mc, faceLabel, ch, 0)

	logger.Debug("Resolution pass finished.", "face", faceLabel, "defects", mc.Len())
	if !mc.OK() {
		return nil
	}
	return clan
}

// resolveNode resolves one charter node against the face its slot expects.
// It returns nil when the node recorded a defect, or when the pass is
// already degraded and founders may no longer run.
func (e *Engine) resolveNode(ctx context.Context, mc *morph.Context, faceLabel string, ch *charter.Charter, depth int) *schema.Clan {
	if ch == nil {
		err := morph.Errorf(morph.MalformedCharter, "charter must not be null")
		err.Face = faceLabel
		mc.Record(err)
		return nil
	}
	if ch.Malformed != nil {
		// Record a copy so resolving the same charter value in another pass
		// re-stamps path context instead of inheriting stale state.
		err := *ch.Malformed
		err.Face = faceLabel
		mc.Record(&err)
		return nil
	}

	if depth > e.MaxDepth {
		err := morph.Errorf(morph.ChartersTooDeep,
			"charter nesting exceeds the maximum depth of %d", e.MaxDepth)
		err.Face = faceLabel
		mc.Record(err)
		return nil
	}

	impLabel := ch.Imp
	if ch.Bare {
		face, ok := e.reg.LookupFace(faceLabel)
		if !ok {
			err := morph.Errorf(morph.UnknownFace, "no face registered under label %q", faceLabel)
			err.Face = faceLabel
			mc.Record(err)
			return nil
		}
		if face.BareImp == "" {
			err := morph.Errorf(morph.MalformedCharter,
				"face %q does not permit bare charters", faceLabel)
			err.Face = faceLabel
			mc.Record(err)
			return nil
		}
		impLabel = face.BareImp
	}

	impReg := e.reg.Imp(mc, impLabel)
	if impReg == nil {
		return nil
	}
	imp := impReg.Imp

	// A charter may request an imp for the wrong slot. Surfacing the
	// mismatch precisely beats producing a type-unsafe value.
	if imp.Face != faceLabel {
		err := morph.Errorf(morph.FaceMismatch,
			"imp %q implements face %q, but this slot expects face %q",
			imp.Label, imp.Face, faceLabel)
		err.Imp = imp.Label
		err.Face = faceLabel
		err.ActualFace = imp.Face
		mc.Record(err)
		return nil
	}

	// Declared roles, in declaration order: the order only affects the
	// sequence defects are reported in, and must be stable.
	septValues := make(map[string]any)
	septClans := make(map[string]*schema.Clan)
	for _, role := range imp.Roles {
		sub, supplied := ch.Roles[role.Label]
		if !supplied {
			if role.Optional {
				continue
			}
			err := morph.Errorf(morph.RoleMissing,
				"imp %q requires role %q of face %q, but the charter supplies none",
				imp.Label, role.Label, role.Face)
			err.Imp = imp.Label
			err.Role = role.Label
			err.Face = role.Face
			mc.Record(err)
			continue
		}
		mc.PushRole(role.Label)
		sept := e.resolveNode(ctx, mc, role.Face, sub, depth+1)
		mc.PopRole()
		if sept != nil {
			septClans[role.Label] = sept
			septValues[role.Label] = sept.Value
		}
	}

	// Supplied roles the imp does not declare are configuration defects;
	// their sub-charters are not resolved. Sorted order keeps diagnostics
	// reproducible over the unordered role map.
	for _, label := range ch.RoleLabels() {
		if imp.Role(label) == nil {
			err := morph.Errorf(morph.UnknownRole,
				"imp %q declares no role %q", imp.Label, label)
			err.Imp = imp.Label
			err.Role = label
			mc.Record(err)
		}
	}

	// Once the pass has recorded any defect, whether at this node or
	// anywhere before it, the remainder runs in error-check-only mode and
	// founders stay uninvoked.
	if mc.Degraded() {
		return nil
	}

	value, err := impReg.Founder(ctx, ch.Data, septValues)
	if err != nil {
		ferr := morph.Errorf(morph.FounderFailed,
			"founder for imp %q failed: %s", imp.Label, err)
		ferr.Imp = imp.Label
		ferr.Face = faceLabel
		mc.Record(ferr)
		return nil
	}

	return &schema.Clan{
		Face:  faceLabel,
		Imp:   imp.Label,
		Value: value,
		Septs: septClans,
	}
}
