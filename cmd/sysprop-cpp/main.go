package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/syssam/sysprop/compiler/gen/cpp"
	"github.com/syssam/sysprop/internal/cmdutil"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:      "sysprop-cpp",
		Usage:     "generate C++ accessors from a system property schema",
		ArgsUsage: "<schema file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "header-output-dir",
				Usage: "directory for the generated header",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "source-output-dir",
				Usage: "directory for the generated source",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "include-name",
				Usage: "include path the generated source uses for the header",
			},
			cmdutil.ScopeFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ps, err := cmdutil.Load(c)
			if err != nil {
				return err
			}
			return cpp.Generate(ctx, ps, cpp.Config{
				HeaderDir:   c.String("header-output-dir"),
				SourceDir:   c.String("source-output-dir"),
				IncludeName: c.String("include-name"),
				Basename:    cmdutil.Basename(c),
			})
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to generate C++ accessors")
	}
}
