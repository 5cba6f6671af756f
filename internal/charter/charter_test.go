package charter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/deansher/morphics-v0.1/internal/morph"
)

func TestParse_FullCharter(t *testing.T) {
	t.Parallel()

	src := []byte(`{
		"imp": "Morphics.ItemOrder.orderByBlend",
		"roles": {
			"w": {"imp": "Morphics.Number.number", "data": 0.3},
			"s": {"imp": "Morphics.Number.number", "data": 0.7}
		}
	}`)

	ch := Parse(src)
	require.Nil(t, ch.Malformed)
	require.Equal(t, "Morphics.ItemOrder.orderByBlend", ch.Imp)
	require.False(t, ch.Bare)
	require.Equal(t, cty.NilVal, ch.Data)
	require.Equal(t, []string{"s", "w"}, ch.RoleLabels())

	w := ch.Roles["w"]
	require.Nil(t, w.Malformed)
	require.Equal(t, "Morphics.Number.number", w.Imp)
	require.True(t, w.Data.RawEquals(cty.NumberFloatVal(0.3)))
}

func TestParse_DataPassesThroughUntouched(t *testing.T) {
	t.Parallel()

	src := []byte(`{"imp": "X.y", "data": {"nested": [1, 2, {"deep": true}]}}`)

	ch := Parse(src)
	require.Nil(t, ch.Malformed)
	// The engine never inspects data; it just survives as a cty value.
	require.True(t, ch.Data.Type().IsObjectType())
	require.True(t, ch.Data.GetAttr("nested").Type().IsTupleType())
}

func TestParse_BareScalarAndArray(t *testing.T) {
	t.Parallel()

	scalar := Parse([]byte(`42`))
	require.Nil(t, scalar.Malformed)
	require.True(t, scalar.Bare)
	require.Empty(t, scalar.Imp)
	require.True(t, scalar.Data.RawEquals(cty.NumberIntVal(42)))

	array := Parse([]byte(`[1, 2, 3]`))
	require.Nil(t, array.Malformed)
	require.True(t, array.Bare)
	require.True(t, array.Data.Type().IsTupleType())
}

func TestParse_MalformedShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"imp not a string", `{"imp": 7}`},
		{"imp null", `{"imp": null}`},
		{"roles not an object", `{"imp": "X.y", "roles": [1, 2]}`},
		{"object without imp", `{"data": 42}`},
		{"unexpected field", `{"imp": "X.y", "rolez": {}}`},
		{"null charter", `null`},
		{"invalid json", `{"imp": `},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ch := Parse([]byte(tc.src))
			require.NotNil(t, ch.Malformed)
			require.Equal(t, morph.MalformedCharter, ch.Malformed.Kind)
		})
	}
}

func TestParse_MalformedRoleKeepsSiblings(t *testing.T) {
	t.Parallel()

	src := []byte(`{
		"imp": "X.y",
		"roles": {
			"bad": {"imp": 5},
			"good": {"imp": "X.z"}
		}
	}`)

	ch := Parse(src)
	require.Nil(t, ch.Malformed)
	require.NotNil(t, ch.Roles["bad"].Malformed)
	require.Nil(t, ch.Roles["good"].Malformed)
	require.Equal(t, "X.z", ch.Roles["good"].Imp)
}

func TestFromValue_MapTypedRoles(t *testing.T) {
	t.Parallel()

	// Role maps can arrive as cty maps (for example from HCL for-expressions)
	// rather than object types.
	roles := cty.MapVal(map[string]cty.Value{
		"w": cty.ObjectVal(map[string]cty.Value{"imp": cty.StringVal("X.z")}),
	})
	v := cty.ObjectVal(map[string]cty.Value{
		"imp":   cty.StringVal("X.y"),
		"roles": roles,
	})

	ch := FromValue(v)
	require.Nil(t, ch.Malformed)
	require.Equal(t, "X.z", ch.Roles["w"].Imp)
}

func TestMarshalData(t *testing.T) {
	t.Parallel()

	b, err := MarshalData(cty.NumberIntVal(42))
	require.NoError(t, err)
	require.JSONEq(t, `42`, string(b))

	b, err = MarshalData(cty.NilVal)
	require.NoError(t, err)
	require.Equal(t, "null", string(b))
}
