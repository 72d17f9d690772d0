package gen

import (
	"strings"

	"github.com/syssam/sysprop/schema"
)

// DefaultHeader is the comment block prepended to every generated file.
const DefaultHeader = "Code generated by sysprop. DO NOT EDIT."

// Config holds the global generation settings shared by all emitters.
type Config struct {
	// Scope is the requested output visibility. Only properties whose
	// scope does not exceed it are emitted.
	Scope schema.Scope
	// Header is the comment text marking generated files.
	Header string
}

// DefaultConfig returns a Config emitting every property.
func DefaultConfig() *Config {
	return &Config{
		Scope:  schema.System,
		Header: DefaultHeader,
	}
}

// HeaderComment returns the configured header with every line prefixed by
// the given comment marker, ready to open a generated file.
func (c *Config) HeaderComment(marker string) string {
	lines := strings.Split(c.Header, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(marker+" "+lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

// Option configures code generation.
type Option func(*Config) error

// NewConfig creates a Config with the given options applied over the
// defaults.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithScope sets the output visibility.
func WithScope(s schema.Scope) Option {
	return func(c *Config) error {
		if s < schema.Internal || s > schema.System {
			return NewConfigError("Scope", s, "scope must be Internal, Public, or System")
		}
		c.Scope = s
		return nil
	}
}

// WithHeader sets the generated-file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}
