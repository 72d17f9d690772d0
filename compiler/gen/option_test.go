package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/sysprop/schema"
)

func TestNewConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig()
	require.NoError(err)
	require.Equal(schema.System, cfg.Scope)
	require.Equal(DefaultHeader, cfg.Header)
}

func TestWithScope(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig(WithScope(schema.Public))
	require.NoError(err)
	require.Equal(schema.Public, cfg.Scope)

	_, err = NewConfig(WithScope(schema.Scope(42)))
	require.ErrorIs(err, ErrInvalidConfig)
}

func TestWithHeader(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig(WithHeader("custom marker"))
	require.NoError(err)
	require.Equal("custom marker", cfg.Header)
}

func TestHeaderComment(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig()
	require.NoError(err)
	require.Equal("// "+DefaultHeader, cfg.HeaderComment("//"))

	cfg, err = NewConfig(WithHeader("first\n\nsecond"))
	require.NoError(err)
	require.Equal("// first\n//\n// second", cfg.HeaderComment("//"))
}
