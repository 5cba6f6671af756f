package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/schema"
)

func noopFounder(_ context.Context, _ cty.Value, _ map[string]any) (any, error) {
	return nil, nil
}

func TestRegisterFace_DedupVsConflict(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()

	r.RegisterFace(mc, &schema.Face{Label: "Morphics.Number"})
	// Registering the equal descriptor again is deduplication, not an error.
	r.RegisterFace(mc, &schema.Face{Label: "Morphics.Number"})
	require.True(t, mc.OK())

	// An unequal descriptor under the same label is exactly one conflict.
	r.RegisterFace(mc, &schema.Face{Label: "Morphics.Number", BareImp: "Morphics.Number.number"})
	require.Len(t, mc.Errors(), 1)
	require.Equal(t, morph.ConflictingRegistration, mc.Errors()[0].Kind)
	require.Equal(t, "Morphics.Number", mc.Errors()[0].Face)
}

func TestRegisterImp_DedupVsConflict(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()

	imp := &schema.Imp{Label: "Morphics.Number.number", Face: "Morphics.Number"}
	r.RegisterImp(mc, imp, noopFounder)
	r.RegisterImp(mc, &schema.Imp{Label: "Morphics.Number.number", Face: "Morphics.Number"}, noopFounder)
	require.True(t, mc.OK())

	// Conflict detection is by label, so the same label with a different
	// face is a conflict rather than a second entry.
	r.RegisterImp(mc, &schema.Imp{Label: "Morphics.Number.number", Face: "Morphics.Other"}, noopFounder)
	require.Len(t, mc.Errors(), 1)
	require.Equal(t, morph.ConflictingRegistration, mc.Errors()[0].Kind)
}

func TestLookups_RecordUnknownDefects(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()

	require.Nil(t, r.Face(mc, "Nonexistent.face"))
	require.Nil(t, r.Imp(mc, "Nonexistent.thing"))

	errs := mc.Errors()
	require.Len(t, errs, 2)
	require.Equal(t, morph.UnknownFace, errs[0].Kind)
	require.Equal(t, morph.UnknownImp, errs[1].Kind)
	require.Equal(t, "Nonexistent.thing", errs[1].Imp)
}

func TestDegradedContext_SkipsMutation(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	mc.Record(morph.Errorf(morph.UnknownImp, "prior defect"))
	r := New()

	// In ErrorCheckOnly mode the registration must not take effect...
	r.RegisterFace(mc, &schema.Face{Label: "Morphics.Number"})
	require.False(t, r.HasFace("Morphics.Number"))

	// ...but the conflict check still runs against existing content.
	fresh := morph.NewContext()
	r.RegisterFace(fresh, &schema.Face{Label: "Morphics.Number"})
	mc.Record(morph.Errorf(morph.UnknownImp, "still degraded"))
	r.RegisterFace(mc, &schema.Face{Label: "Morphics.Number", BareImp: "x"})
	require.Equal(t, morph.ConflictingRegistration, mc.Errors()[len(mc.Errors())-1].Kind)
}

func TestFreeze_MakesRegistrationPanic(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()
	r.RegisterFace(mc, &schema.Face{Label: "Morphics.Number"})
	r.Freeze()

	require.True(t, r.Frozen())
	require.Panics(t, func() {
		r.RegisterFace(mc, &schema.Face{Label: "Morphics.Other"})
	})
	require.Panics(t, func() {
		r.RegisterImp(mc, &schema.Imp{Label: "X.y", Face: "X"}, noopFounder)
	})

	// Reads stay available after the freeze.
	require.NotNil(t, r.Face(mc, "Morphics.Number"))
}

func TestValidate_FlagsDanglingFaces(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()
	r.RegisterImp(mc, &schema.Imp{
		Label: "A.widget",
		Face:  "A.Face",
		Roles: []schema.Role{{Label: "dep", Face: "B.Face"}},
	}, noopFounder)
	require.True(t, mc.OK())

	r.Validate(context.Background(), mc)

	// Both the imp's own face and its role's face are unregistered.
	errs := mc.Errors()
	require.Len(t, errs, 2)
	require.Equal(t, morph.UnknownFace, errs[0].Kind)
	require.Equal(t, "A.Face", errs[0].Face)
	require.Equal(t, morph.UnknownFace, errs[1].Kind)
	require.Equal(t, "B.Face", errs[1].Face)
	require.Equal(t, "dep", errs[1].Role)
}

func TestValidate_FlagsBareImpPolicyDefects(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()
	r.RegisterFace(mc, &schema.Face{Label: "A.Face", BareImp: "A.missing"})
	r.RegisterFace(mc, &schema.Face{Label: "B.Face", BareImp: "B.wrongFace"})
	r.RegisterImp(mc, &schema.Imp{Label: "B.wrongFace", Face: "A.Face"}, noopFounder)

	r.Validate(context.Background(), mc)

	errs := mc.Errors()
	require.Len(t, errs, 2)
	require.Equal(t, morph.UnknownImp, errs[0].Kind)
	require.Equal(t, "A.missing", errs[0].Imp)
	require.Equal(t, morph.FaceMismatch, errs[1].Kind)
	require.Equal(t, "B.Face", errs[1].Face)
	require.Equal(t, "A.Face", errs[1].ActualFace)
}

func TestValidate_CleanRegistryRecordsNothing(t *testing.T) {
	t.Parallel()

	mc := morph.NewContext()
	r := New()
	r.RegisterFace(mc, &schema.Face{Label: "A.Face", BareImp: "A.widget"})
	r.RegisterImp(mc, &schema.Imp{Label: "A.widget", Face: "A.Face"}, noopFounder)

	r.Validate(context.Background(), mc)
	require.True(t, mc.OK())
}
