// Package load decodes .sysprop schema documents into schema.PropertySet
// values. It is a structural decode only; semantic validation belongs to
// compiler/gen.
package load

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/sysprop/schema"
)

// ParseError reports a schema document that does not conform to the
// declarative grammar: an unknown field, a malformed block, or a literal
// that does not match its field type. Its message is deliberately generic;
// the underlying decode error is available via Unwrap only.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "failed to parse " + e.Path
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a schema document. Unknown fields are rejected.
func Parse(data []byte) (*schema.PropertySet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	ps := &schema.PropertySet{}
	if err := dec.Decode(ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// File reads and decodes the schema document at path. Read failures carry
// the OS error; decode failures are reported as a *ParseError.
func File(path string) (*schema.PropertySet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading file %s: %w", path, err)
	}
	ps, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return ps, nil
}
