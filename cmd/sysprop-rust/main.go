package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/syssam/sysprop/compiler/gen/rust"
	"github.com/syssam/sysprop/internal/cmdutil"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:      "sysprop-rust",
		Usage:     "generate Rust accessors from a system property schema",
		ArgsUsage: "<schema file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rust-output-dir",
				Usage: "directory for the generated mod.rs",
				Value: ".",
			},
			cmdutil.ScopeFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ps, err := cmdutil.Load(c)
			if err != nil {
				return err
			}
			return rust.Generate(ctx, ps, rust.Config{
				Dir: c.String("rust-output-dir"),
			})
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to generate Rust accessors")
	}
}
