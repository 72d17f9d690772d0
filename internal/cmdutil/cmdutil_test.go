package cmdutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/schema"
)

// run invokes Load through a cli command, the way the generator binaries
// do, and returns its results.
func run(t *testing.T, args ...string) (*gen.PropertySet, error) {
	t.Helper()
	var (
		ps      *gen.PropertySet
		loadErr error
	)
	app := &cli.Command{
		Name:  "sysprop-test",
		Flags: []cli.Flag{ScopeFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			ps, loadErr = Load(c)
			return nil
		},
	}
	require.NoError(t, app.Run(context.Background(), append([]string{"sysprop-test"}, args...)))
	return ps, loadErr
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	schemaFile := filepath.Join("..", "..", "compiler", "load", "testdata", "PlatformProperties.sysprop")

	ps, err := run(t, schemaFile)
	require.NoError(err)
	require.Equal("PlatformProperties", ps.Name())
	require.Equal(schema.System, ps.Scope)
	require.Len(ps.Visible(), 4)

	ps, err = run(t, "--scope", "public", schemaFile)
	require.NoError(err)
	require.Equal(schema.Public, ps.Scope)
	require.Len(ps.Visible(), 3)
}

func TestLoadArgErrors(t *testing.T) {
	require := require.New(t)

	_, err := run(t)
	require.EqualError(err, "no input file specified")

	_, err = run(t, "a.sysprop", "b.sysprop")
	require.EqualError(err, "more than one input file specified")

	_, err = run(t, "--scope", "secret", "a.sysprop")
	require.ErrorContains(err, `unknown scope "secret"`)

	_, err = run(t, filepath.Join("testdata", "missing.sysprop"))
	require.ErrorContains(err, "Error reading file")
}
