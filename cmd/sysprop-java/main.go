package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/syssam/sysprop/compiler/gen/java"
	"github.com/syssam/sysprop/internal/cmdutil"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:      "sysprop-java",
		Usage:     "generate Java accessors and their JNI library from a system property schema",
		ArgsUsage: "<schema file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "java-output-dir",
				Usage: "directory for the generated class, under its package directories",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "jni-output-dir",
				Usage: "directory for the generated JNI source",
				Value: ".",
			},
			cmdutil.ScopeFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ps, err := cmdutil.Load(c)
			if err != nil {
				return err
			}
			return java.Generate(ctx, ps, java.Config{
				JavaDir: c.String("java-output-dir"),
				JNIDir:  c.String("jni-output-dir"),
			})
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to generate Java accessors")
	}
}
