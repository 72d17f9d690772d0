package gen

import (
	"strings"

	"github.com/syssam/sysprop/schema"
)

// The following types and their exported methods are used by the emitters
// to generate the per-language accessor sources.
type (
	// PropertySet is the validated, normalized IR of one schema document.
	// It is built once per generator invocation and handed immutably to
	// the emitters.
	PropertySet struct {
		*Config
		// Owner is the build partition defining this property set.
		Owner schema.Owner
		// Module is the validated dotted module name.
		Module string
		// Prefix is the runtime key prefix. May be empty.
		Prefix string
		// Props holds all properties in declaration order, including
		// those filtered out of the requested visibility.
		Props []*Property
	}

	// Property is a single validated property with its access mode
	// normalized.
	Property struct {
		set *PropertySet
		// Name is the dotted property name as declared.
		Name string
		// Type is the value type of the property.
		Type schema.Type
		// Scope is the visibility tier.
		Scope schema.Scope
		// Access is the read/write capability. Never AccessUnset in the
		// IR: unset modes were normalized to Readonly.
		Access schema.Access
		// LegacyName is the fallback key read when the primary key is
		// unset. Empty when the property has no legacy alias.
		LegacyName string
		// Deprecated marks the generated accessors as deprecated.
		Deprecated bool
		// IntegerAsBool formats booleans as "1"/"0" in emitted setters.
		IntegerAsBool bool

		enumValues string
	}
)

// New validates ps, applies the access normalization pass, and builds the
// IR. The input is left untouched; the IR holds its own copy of every
// property.
func New(cfg *Config, ps *schema.PropertySet) (*PropertySet, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := Validate(ps); err != nil {
		return nil, err
	}
	set := &PropertySet{
		Config: cfg,
		Owner:  ps.Owner,
		Module: ps.Module,
		Prefix: ps.Prefix,
		Props:  make([]*Property, 0, len(ps.Props)),
	}
	for _, p := range ps.Props {
		access := p.Access
		if access == schema.AccessUnset {
			access = schema.Readonly
		}
		set.Props = append(set.Props, &Property{
			set:           set,
			Name:          p.Name,
			Type:          p.Type,
			Scope:         p.Scope,
			Access:        access,
			LegacyName:    p.LegacyName,
			Deprecated:    p.Deprecated,
			IntegerAsBool: p.IntegerAsBool,
			enumValues:    p.EnumValues,
		})
	}
	return set, nil
}

// Name returns the generated type name: the module substring after the
// last dot, e.g. "PlatformProperties" for "android.os.PlatformProperties".
func (ps *PropertySet) Name() string {
	return ps.Module[strings.LastIndex(ps.Module, ".")+1:]
}

// Namespace returns the module name with dots replaced by sep. Emitters
// use it for C++ namespaces ("::"), Java packages ("."), and JNI class
// paths ("/"); the Java package excludes the trailing class-name segment.
func (ps *PropertySet) Namespace(sep string) string {
	return strings.ReplaceAll(ps.Module, ".", sep)
}

// Package returns the module name without its last segment, e.g.
// "android.os" for "android.os.PlatformProperties".
func (ps *PropertySet) Package() string {
	return ps.Module[:strings.LastIndex(ps.Module, ".")]
}

// Identifier returns the module name normalized to a single identifier.
func (ps *PropertySet) Identifier() string {
	return identifier(ps.Module)
}

// Visible returns the properties included at the configured visibility, in
// declaration order. A property is included when its scope does not exceed
// the requested scope.
func (ps *PropertySet) Visible() []*Property {
	props := make([]*Property, 0, len(ps.Props))
	for _, p := range ps.Props {
		if p.Scope <= ps.Scope {
			props = append(props, p)
		}
	}
	return props
}

// Identifier returns the property name normalized to a language
// identifier (dots replaced with underscores).
func (p *Property) Identifier() string {
	return identifier(p.Name)
}

// Key returns the runtime key of the property: the set prefix joined to
// the name with a dot, or the bare name when the prefix is empty.
func (p *Property) Key() string {
	prefix := p.set.Prefix
	if prefix == "" {
		return p.Name
	}
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return prefix + p.Name
}

// EnumValues returns the declared enum values in declaration order. It
// returns nil for non-enum properties.
func (p *Property) EnumValues() []string {
	if !p.Type.IsEnum() {
		return nil
	}
	return strings.Split(p.enumValues, "|")
}

// Writable reports whether setters are emitted for the property.
func (p *Property) Writable() bool {
	return p.Access != schema.Readonly
}

// ReadOnly reports whether the property is read-only.
func (p *Property) ReadOnly() bool {
	return p.Access == schema.Readonly
}
