package gen

import (
	"strings"

	"github.com/syssam/sysprop/schema"
)

// PlatformModule is the reserved module name for platform-defined
// property sets. No other owner may use it.
const PlatformModule = "android.os.PlatformProperties"

// Validate checks ps against the full set of naming, uniqueness, namespace
// and ownership rules. It is pure: ps is never mutated, and the first
// violated rule short-circuits with its message. Checks run in a fixed
// order, so an input violating several rules reports only the earliest one.
func Validate(ps *schema.PropertySet) error {
	segments := strings.Split(ps.Module, ".")
	if len(segments) <= 1 {
		return errorf(`Invalid module name "%s"`, ps.Module)
	}
	for _, segment := range segments {
		if !isIdentifier(segment) {
			return errorf(`Invalid name "%s" in module`, segment)
		}
	}

	if ps.Prefix != "" && !isPropertyName(ps.Prefix) {
		return errorf(`Invalid prefix "%s"`, ps.Prefix)
	}

	if len(ps.Props) == 0 {
		return errorf("There is no defined property")
	}

	for _, prop := range ps.Props {
		if err := validateProp(ps, prop); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(ps.Props))
	for _, prop := range ps.Props {
		id := identifier(prop.Name)
		if _, ok := seen[id]; ok {
			return errorf(`Duplicated prop name "%s"`, prop.Name)
		}
		seen[id] = struct{}{}
	}

	if ps.Owner == schema.Platform {
		if ps.Module != PlatformModule {
			return errorf(`Platform-defined properties should have "%s" as module name`, PlatformModule)
		}
	} else if ps.Module == PlatformModule {
		return errorf(`Vendor or Odm cannot use "%s" as module name`, PlatformModule)
	}

	return nil
}

// validateProp checks a single property. An empty enum_values string splits
// into one empty segment, which fails the identifier check; it is reported
// as an invalid enum value, not as an empty list.
func validateProp(ps *schema.PropertySet, prop *schema.Property) error {
	if !isPropertyName(prop.Name) {
		return errorf(`Invalid prop name "%s"`, prop.Name)
	}

	if prop.Type.IsEnum() {
		values := strings.Split(prop.EnumValues, "|")
		if len(values) == 0 {
			return errorf(`Enum values are empty for prop "%s"`, prop.Name)
		}
		for _, value := range values {
			if !isIdentifier(value) {
				return errorf(`Invalid enum value "%s" for prop "%s"`, value, prop.Name)
			}
		}
		seen := make(map[string]struct{}, len(values))
		for _, value := range values {
			if _, ok := seen[value]; ok {
				return errorf(`Duplicated enum value "%s" for prop "%s"`, value, prop.Name)
			}
			seen[value] = struct{}{}
		}
	}

	if ps.Owner == schema.Platform {
		full := ps.Prefix + prop.Name
		if strings.HasPrefix(full, "vendor.") || strings.HasPrefix(full, "odm.") {
			return errorf(`Prop "%s" owned by platform cannot have vendor. or odm. namespace`, prop.Name)
		}
	}

	return nil
}

// isIdentifier reports whether name is a valid identifier: an ASCII letter
// or underscore followed by letters, digits, or underscores.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// isPropertyName reports whether name is a valid dotted property name:
// non-empty, with every dot-separated segment a valid identifier.
func isPropertyName(name string) bool {
	if name == "" {
		return false
	}
	for _, segment := range strings.Split(name, ".") {
		if !isIdentifier(segment) {
			return false
		}
	}
	return true
}

// identifier normalizes a dotted property name to a language identifier by
// replacing dots with underscores. Two names differing only by dot versus
// underscore placement normalize to the same identifier.
func identifier(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}
