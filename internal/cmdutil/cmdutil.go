// Package cmdutil carries the plumbing shared by the generator binaries:
// argument checking, scope parsing and schema loading.
package cmdutil

import (
	"errors"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/syssam/sysprop/compiler/gen"
	"github.com/syssam/sysprop/compiler/load"
	"github.com/syssam/sysprop/schema"
)

// ScopeFlag returns the --scope flag every generator binary accepts.
func ScopeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "scope",
		Usage: "lowest API scope to emit accessors for (internal, public, system)",
		Value: "system",
	}
}

// Load checks the positional arguments, parses the schema file named by
// the single argument and builds the generation model for the requested
// scope.
func Load(c *cli.Command) (*gen.PropertySet, error) {
	switch {
	case c.Args().Len() == 0:
		return nil, errors.New("no input file specified")
	case c.Args().Len() > 1:
		return nil, errors.New("more than one input file specified")
	}

	scope, err := schema.ParseScope(c.String("scope"))
	if err != nil {
		return nil, err
	}

	ps, err := load.File(c.Args().First())
	if err != nil {
		return nil, err
	}

	cfg, err := gen.NewConfig(gen.WithScope(scope))
	if err != nil {
		return nil, err
	}

	return gen.New(cfg, ps)
}

// Basename returns the schema file name, which conventionally names the
// generated outputs.
func Basename(c *cli.Command) string {
	return filepath.Base(c.Args().First())
}
