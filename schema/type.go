package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Owner is the build partition that defines a property set. It governs
// the namespace rules enforced during validation: the platform owner is
// restricted to the reserved module name and may not claim vendor or odm
// property namespaces.
type Owner int

const (
	Platform Owner = iota
	Vendor
	Odm
)

var ownerNames = [...]string{
	Platform: "Platform",
	Vendor:   "Vendor",
	Odm:      "Odm",
}

// String returns the schema literal of the owner.
func (o Owner) String() string {
	if o < Platform || o > Odm {
		return fmt.Sprintf("Owner(%d)", int(o))
	}
	return ownerNames[o]
}

// UnmarshalYAML decodes an owner literal. An unknown literal is a decode
// failure, reported by the parser rather than the validator.
func (o *Owner) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for i, name := range ownerNames {
		if s == name {
			*o = Owner(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown owner %q", node.Line, s)
}

// Scope is the visibility tier of a property. Scopes are ordered
// Internal < Public < System; at emission time a property is included
// only when its scope does not exceed the requested visibility.
type Scope int

const (
	Internal Scope = iota
	Public
	System
)

var scopeNames = [...]string{
	Internal: "Internal",
	Public:   "Public",
	System:   "System",
}

// String returns the schema literal of the scope.
func (s Scope) String() string {
	if s < Internal || s > System {
		return fmt.Sprintf("Scope(%d)", int(s))
	}
	return scopeNames[s]
}

// UnmarshalYAML decodes a scope literal.
func (s *Scope) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return err
	}
	for i, name := range scopeNames {
		if v == name {
			*s = Scope(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown scope %q", node.Line, v)
}

// ParseScope converts a lowercase CLI argument ("internal", "public",
// "system") to a Scope.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "internal":
		return Internal, nil
	case "public":
		return Public, nil
	case "system":
		return System, nil
	}
	return 0, fmt.Errorf("unknown scope %q; use internal, public, or system", s)
}

// Access is the read/write capability of a property. The zero value marks
// a property that did not declare an access mode; normalization defaults
// it to Readonly after validation.
type Access int

const (
	AccessUnset Access = iota
	Readonly
	Writeonce
	ReadWrite
)

var accessNames = [...]string{
	AccessUnset: "",
	Readonly:    "Readonly",
	Writeonce:   "Writeonce",
	ReadWrite:   "ReadWrite",
}

// String returns the schema literal of the access mode.
func (a Access) String() string {
	if a < AccessUnset || a > ReadWrite {
		return fmt.Sprintf("Access(%d)", int(a))
	}
	return accessNames[a]
}

// UnmarshalYAML decodes an access literal.
func (a *Access) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for i := Readonly; i <= ReadWrite; i++ {
		if s == accessNames[i] {
			*a = i
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown access %q", node.Line, s)
}

// Type is the value type of a property: eight scalar kinds and their
// list variants.
type Type int

const (
	Boolean Type = iota
	Integer
	UInt
	Long
	ULong
	Double
	String
	Enum
	BooleanList
	IntegerList
	UIntList
	LongList
	ULongList
	DoubleList
	StringList
	EnumList
)

// scalarKinds is the number of non-list type tags. List tags follow the
// scalar tags in the same order.
const scalarKinds = 8

var typeNames = [...]string{
	Boolean:     "Boolean",
	Integer:     "Integer",
	UInt:        "UInt",
	Long:        "Long",
	ULong:       "ULong",
	Double:      "Double",
	String:      "String",
	Enum:        "Enum",
	BooleanList: "BooleanList",
	IntegerList: "IntegerList",
	UIntList:    "UIntList",
	LongList:    "LongList",
	ULongList:   "ULongList",
	DoubleList:  "DoubleList",
	StringList:  "StringList",
	EnumList:    "EnumList",
}

// String returns the schema literal of the type.
func (t Type) String() string {
	if t < Boolean || t > EnumList {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// UnmarshalYAML decodes a type literal.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for i, name := range typeNames {
		if s == name {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown type %q", node.Line, s)
}

// IsList reports whether the type is a list variant.
func (t Type) IsList() bool {
	return t >= BooleanList
}

// Element returns the scalar kind of the type: the type itself for
// scalars, the element kind for lists.
func (t Type) Element() Type {
	if t.IsList() {
		return t - scalarKinds
	}
	return t
}

// IsEnum reports whether the type is Enum or EnumList.
func (t Type) IsEnum() bool {
	return t.Element() == Enum
}
