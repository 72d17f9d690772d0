package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/syssam/sysprop/compiler/gen/golang"
	"github.com/syssam/sysprop/internal/cmdutil"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:      "sysprop-go",
		Usage:     "generate Go accessors from a system property schema",
		ArgsUsage: "<schema file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "go-output-dir",
				Usage: "directory for the generated source file",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "go-package",
				Usage: "package name of the generated source (defaults to the lowercased module name)",
			},
			cmdutil.ScopeFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ps, err := cmdutil.Load(c)
			if err != nil {
				return err
			}
			return golang.Generate(ctx, ps, golang.Config{
				Dir:     c.String("go-output-dir"),
				Package: c.String("go-package"),
			})
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to generate Go accessors")
	}
}
