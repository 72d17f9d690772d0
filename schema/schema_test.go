package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/syssam/sysprop/schema"
)

func TestTypeElement(t *testing.T) {
	tests := []struct {
		typ    schema.Type
		elem   schema.Type
		isList bool
	}{
		{schema.Boolean, schema.Boolean, false},
		{schema.Integer, schema.Integer, false},
		{schema.UInt, schema.UInt, false},
		{schema.Long, schema.Long, false},
		{schema.ULong, schema.ULong, false},
		{schema.Double, schema.Double, false},
		{schema.String, schema.String, false},
		{schema.Enum, schema.Enum, false},
		{schema.BooleanList, schema.Boolean, true},
		{schema.IntegerList, schema.Integer, true},
		{schema.UIntList, schema.UInt, true},
		{schema.LongList, schema.Long, true},
		{schema.ULongList, schema.ULong, true},
		{schema.DoubleList, schema.Double, true},
		{schema.StringList, schema.String, true},
		{schema.EnumList, schema.Enum, true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.elem, tt.typ.Element())
			assert.Equal(t, tt.isList, tt.typ.IsList())
			assert.Equal(t, tt.elem == schema.Enum, tt.typ.IsEnum())
		})
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	require := require.New(t)

	var owner schema.Owner
	require.NoError(yaml.Unmarshal([]byte(`Odm`), &owner))
	require.Equal(schema.Odm, owner)
	require.Equal("Odm", owner.String())

	var scope schema.Scope
	require.NoError(yaml.Unmarshal([]byte(`Public`), &scope))
	require.Equal(schema.Public, scope)

	var access schema.Access
	require.NoError(yaml.Unmarshal([]byte(`ReadWrite`), &access))
	require.Equal(schema.ReadWrite, access)

	var typ schema.Type
	require.NoError(yaml.Unmarshal([]byte(`ULongList`), &typ))
	require.Equal(schema.ULongList, typ)
	require.Equal("ULongList", typ.String())
}

func TestLiteralErrors(t *testing.T) {
	require := require.New(t)

	var owner schema.Owner
	require.ErrorContains(yaml.Unmarshal([]byte(`Carrier`), &owner), `unknown owner "Carrier"`)

	var scope schema.Scope
	require.ErrorContains(yaml.Unmarshal([]byte(`Secret`), &scope), `unknown scope "Secret"`)

	var access schema.Access
	require.ErrorContains(yaml.Unmarshal([]byte(`Maybe`), &access), `unknown access "Maybe"`)

	// The empty access literal is not accepted even though it is the
	// zero value's name.
	require.ErrorContains(yaml.Unmarshal([]byte(`""`), &access), "unknown access")

	var typ schema.Type
	require.ErrorContains(yaml.Unmarshal([]byte(`Short`), &typ), `unknown type "Short"`)
}

func TestScopeOrdering(t *testing.T) {
	assert.True(t, schema.Internal < schema.Public)
	assert.True(t, schema.Public < schema.System)
}

func TestParseScope(t *testing.T) {
	require := require.New(t)

	for name, want := range map[string]schema.Scope{
		"internal": schema.Internal,
		"public":   schema.Public,
		"system":   schema.System,
	} {
		got, err := schema.ParseScope(name)
		require.NoError(err)
		require.Equal(want, got)
	}

	_, err := schema.ParseScope("System")
	require.ErrorContains(err, `unknown scope "System"`)
}
