package number_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deansher/morphics-v0.1/internal/charter"
	"github.com/deansher/morphics-v0.1/internal/morph"
	"github.com/deansher/morphics-v0.1/internal/registry"
	"github.com/deansher/morphics-v0.1/internal/resolver"
	"github.com/deansher/morphics-v0.1/modules/number"
)

func mustParse(t *testing.T, src string) *charter.Charter {
	t.Helper()
	return charter.Parse([]byte(src))
}

func newEngine(t *testing.T) *resolver.Engine {
	t.Helper()

	mc := morph.NewContext()
	r := registry.New()
	r.Install(context.Background(), mc, &number.Module{})
	r.Validate(context.Background(), mc)
	require.True(t, mc.OK(), "module must register cleanly: %v", mc.Errors())
	r.Freeze()
	return resolver.New(r)
}

func TestNumber_ResolvesDataUnchanged(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)
	clan, errs := eng.Resolve(context.Background(), number.FaceLabel,
		mustParse(t, `{"imp": "Morphics.Number.number", "data": 42}`))

	require.Empty(t, errs)
	require.Equal(t, float64(42), clan.Value)
}

func TestNumber_BareCharter(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)
	clan, errs := eng.Resolve(context.Background(), number.FaceLabel, mustParse(t, `0.25`))

	require.Empty(t, errs)
	require.Equal(t, 0.25, clan.Value)
	require.Equal(t, number.ImpNumber, clan.Imp)
}

func TestNumber_NonNumericData(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)
	clan, errs := eng.Resolve(context.Background(), number.FaceLabel,
		mustParse(t, `{"imp": "Morphics.Number.number", "data": "not a number"}`))

	require.Nil(t, clan)
	require.Len(t, errs, 1)
	require.Equal(t, morph.FounderFailed, errs[0].Kind)
}

func TestNumber_MissingData(t *testing.T) {
	t.Parallel()

	eng := newEngine(t)
	clan, errs := eng.Resolve(context.Background(), number.FaceLabel,
		mustParse(t, `{"imp": "Morphics.Number.number"}`))

	require.Nil(t, clan)
	require.Len(t, errs, 1)
	require.Equal(t, morph.FounderFailed, errs[0].Kind)
	require.Contains(t, errs[0].Detail, "requires a numeric data value")
}
