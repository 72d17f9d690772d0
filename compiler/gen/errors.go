package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidPropertySet indicates a schema that violates a naming,
	// uniqueness, namespace, or ownership rule.
	ErrInvalidPropertySet = errors.New("sysprop: invalid property set")
	// ErrGenerationFailed indicates a code emission or file writing failure.
	ErrGenerationFailed = errors.New("sysprop: code generation failed")
	// ErrInvalidConfig indicates a generator configuration error.
	ErrInvalidConfig = errors.New("sysprop: invalid configuration")
)

// ConfigError represents a generator configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("sysprop: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("sysprop: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// ValidationError reports the first rule a property set violates. Its
// message is an exact, stable string: build tooling and tests match on it
// verbatim, so the wording is part of the validator's contract.
type ValidationError struct {
	Message string
}

// Error implements the error interface. It returns the bare message with
// no prefix, preserving the exact wording consumers match on.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether the target matches the sentinel error for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidPropertySet
}

// errorf creates a ValidationError with a formatted message.
func errorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GenerationError represents a code emission or output writing error.
type GenerationError struct {
	Target  string // "cpp", "java", "rust", "go"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("sysprop: generation error")
	if e.Target != "" {
		b.WriteString(" for target ")
		b.WriteString(e.Target)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(target, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Target:  target,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
