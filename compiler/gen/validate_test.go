package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/compiler/load"
	"github.com/syssam/sysprop/schema"
)

const duplicatedField = `
owner: Vendor
module: "com.error.DuplicatedField"
prefix: "com.error"
prop:
  - name: "dup"
    type: Integer
    scope: Internal
  - name: "dup"
    type: Long
    scope: Public
`

const emptyProp = `
owner: Vendor
module: "com.google.EmptyProp"
prefix: ""
`

const invalidPropName = `
owner: Odm
module: "odm.invalid.prop.name"
prefix: "invalid"
prop:
  - name: "!@#$"
    type: Integer
    scope: System
`

const emptyEnumValues = `
owner: Odm
module: "test.manufacturer"
prefix: "test"
prop:
  - name: "empty_enum_value"
    type: Enum
    scope: Internal
`

const duplicatedEnumValue = `
owner: Vendor
module: "vendor.module.name"
prefix: ""
prop:
  - name: "status"
    type: Enum
    enum_values: "on|off|intermediate|on"
    scope: Public
`

const invalidModuleName = `
owner: Platform
module: ""
prefix: ""
prop:
  - name: "integer"
    type: Integer
    scope: Public
`

const invalidNamespaceForPlatform = `
owner: Platform
module: "android.os.PlatformProperties"
prefix: "vendor.buildprop"
prop:
  - name: "utclong"
    type: Long
    scope: System
`

const invalidModuleNameForPlatform = `
owner: Platform
module: "android.os.notPlatformProperties"
prefix: "android.os"
prop:
  - name: "stringprop"
    type: String
    scope: Internal
`

const invalidModuleNameForVendorOrOdm = `
owner: Vendor
module: "android.os.PlatformProperties"
prefix: "android.os"
prop:
  - name: "init"
    type: Integer
    scope: System
`

const invalidPrefix = `
owner: Vendor
module: "com.error.InvalidPrefix"
prefix: "com.error."
prop:
  - name: "fine"
    type: Integer
    scope: Internal
`

const invalidModuleSegment = `
owner: Vendor
module: "com.4error.Module"
prefix: ""
prop:
  - name: "fine"
    type: Integer
    scope: Internal
`

const singleSegmentModule = `
owner: Vendor
module: "module"
prefix: ""
prop:
  - name: "fine"
    type: Integer
    scope: Internal
`

const invalidEnumValue = `
owner: Vendor
module: "vendor.module.name"
prefix: ""
prop:
  - name: "status"
    type: Enum
    enum_values: "on|hy-phen"
    scope: Public
`

const dotUnderscoreCollision = `
owner: Vendor
module: "com.error.Collision"
prefix: ""
prop:
  - name: "a.b"
    type: Integer
    scope: Internal
  - name: "a_b"
    type: Integer
    scope: Internal
`

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"duplicated prop name", duplicatedField, `Duplicated prop name "dup"`},
		{"no properties", emptyProp, "There is no defined property"},
		{"invalid prop name", invalidPropName, `Invalid prop name "!@#$"`},
		{"missing enum values", emptyEnumValues, `Invalid enum value "" for prop "empty_enum_value"`},
		{"duplicated enum value", duplicatedEnumValue, `Duplicated enum value "on" for prop "status"`},
		{"invalid enum value", invalidEnumValue, `Invalid enum value "hy-phen" for prop "status"`},
		{"empty module name", invalidModuleName, `Invalid module name ""`},
		{"single segment module", singleSegmentModule, `Invalid module name "module"`},
		{"invalid module segment", invalidModuleSegment, `Invalid name "4error" in module`},
		{"invalid prefix", invalidPrefix, `Invalid prefix "com.error."`},
		{"platform prop in vendor namespace", invalidNamespaceForPlatform, `Prop "utclong" owned by platform cannot have vendor. or odm. namespace`},
		{"platform with wrong module", invalidModuleNameForPlatform, `Platform-defined properties should have "android.os.PlatformProperties" as module name`},
		{"vendor with platform module", invalidModuleNameForVendorOrOdm, `Vendor or Odm cannot use "android.os.PlatformProperties" as module name`},
		{"dot and underscore collide", dotUnderscoreCollision, `Duplicated prop name "a_b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ps, err := load.Parse([]byte(tt.doc))
			require.NoError(err)
			err = gen.Validate(ps)
			require.EqualError(err, tt.wantErr)
			require.ErrorIs(err, gen.ErrInvalidPropertySet)
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	require := require.New(t)

	// Violates the module rule and the no-properties rule at once; only
	// the earlier check reports.
	ps := &schema.PropertySet{
		Owner:  schema.Vendor,
		Module: "module",
	}
	require.EqualError(gen.Validate(ps), `Invalid module name "module"`)

	// A bad prop name beats the later duplicate check.
	ps = &schema.PropertySet{
		Owner:  schema.Vendor,
		Module: "com.test.Order",
		Props: []*schema.Property{
			{Name: "!bad", Type: schema.Integer},
			{Name: "dup", Type: schema.Integer},
			{Name: "dup", Type: schema.Integer},
		},
	}
	require.EqualError(gen.Validate(ps), `Invalid prop name "!bad"`)
}

func TestValidateAccepts(t *testing.T) {
	require := require.New(t)

	ps := &schema.PropertySet{
		Owner:  schema.Platform,
		Module: "android.os.PlatformProperties",
		Prefix: "ro.build",
		Props: []*schema.Property{
			{Name: "flag", Type: schema.Boolean, Scope: schema.Internal},
			{Name: "count", Type: schema.Integer, Scope: schema.Public},
			{Name: "mask", Type: schema.UInt, Scope: schema.Public},
			{Name: "timestamp.utc", Type: schema.Long, Scope: schema.System},
			{Name: "serial", Type: schema.ULong, Scope: schema.System},
			{Name: "ratio", Type: schema.Double, Scope: schema.Internal},
			{Name: "fingerprint", Type: schema.String, Scope: schema.Public},
			{Name: "status", Type: schema.Enum, EnumValues: "on|off", Scope: schema.Public},
			{Name: "stages", Type: schema.StringList, Scope: schema.Internal},
			{Name: "modes", Type: schema.EnumList, EnumValues: "slow|fast", Scope: schema.System},
		},
	}
	require.NoError(gen.Validate(ps))

	// Validation is idempotent and does not mutate its input.
	require.NoError(gen.Validate(ps))
	require.Equal(schema.AccessUnset, ps.Props[0].Access)
}

func TestValidatePlatformNamespaceUsesRawConcatenation(t *testing.T) {
	require := require.New(t)

	// The namespace check joins prefix and name without a dot, so prefix
	// "vendor" plus name "sub" reads "vendorsub" and stays legal even for
	// the platform owner.
	ps := &schema.PropertySet{
		Owner:  schema.Platform,
		Module: "android.os.PlatformProperties",
		Prefix: "vendor",
		Props: []*schema.Property{
			{Name: "sub", Type: schema.Integer},
		},
	}
	require.NoError(gen.Validate(ps))

	// With a prefix already inside the vendor namespace the same name is
	// rejected.
	ps.Prefix = "vendor.build"
	require.EqualError(gen.Validate(ps), `Prop "sub" owned by platform cannot have vendor. or odm. namespace`)
}
