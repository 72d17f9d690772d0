package schema

// PropertySet is the decoded form of a .sysprop schema document. It is a
// structural decode only: the parser fills it without semantic checks, and
// the compiler/gen package validates it before any code is emitted.
type PropertySet struct {
	// Owner is the build partition defining this property set.
	Owner Owner `yaml:"owner"`
	// Module is the dotted identifier the generated namespace, package and
	// class name derive from, e.g. "android.os.PlatformProperties".
	Module string `yaml:"module"`
	// Prefix is prepended to every property's runtime key. May be empty.
	Prefix string `yaml:"prefix"`
	// Props are the declared properties, in declaration order. The order
	// is preserved into emitted code.
	Props []*Property `yaml:"prop"`
}

// Property is a single named, typed configuration entry.
type Property struct {
	// Name is the dotted property name, unique within the set after
	// dot-to-underscore normalization.
	Name string `yaml:"name"`
	// Type is the value type of the property.
	Type Type `yaml:"type"`
	// Scope is the visibility tier controlling which build variants see
	// the generated accessors.
	Scope Scope `yaml:"scope"`
	// EnumValues is the pipe-delimited value list ("a|b|c"). Meaningful
	// only for Enum and EnumList properties.
	EnumValues string `yaml:"enum_values"`
	// Access is the read/write capability. Unset defaults to Readonly
	// during normalization.
	Access Access `yaml:"access"`
	// LegacyName is an optional fallback key to read when the primary
	// key is unset.
	LegacyName string `yaml:"legacy_prop_name"`
	// Deprecated marks the generated accessors as deprecated. It has no
	// effect on validation.
	Deprecated bool `yaml:"deprecated"`
	// IntegerAsBool formats boolean values as "1"/"0" instead of
	// "true"/"false" in emitted setters.
	IntegerAsBool bool `yaml:"integer_as_bool"`
}
