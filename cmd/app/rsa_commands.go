package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/rsatoy/cmd/app/commands"
	"github.com/allisson/rsatoy/internal/app"
	"github.com/allisson/rsatoy/internal/config"
)

func stepsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "steps",
		Aliases: []string{"s"},
		Value:   false,
		Usage:   "Also print the square-and-multiply iterations for the first byte",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// newContainer loads and validates configuration before any command runs.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer commands.CloseContainer(container, os.Stderr)

	transcodeUseCase, err := container.TranscodeUseCase()
	if err != nil {
		return err
	}

	return commands.RunTranscode(
		ctx,
		transcodeUseCase,
		container.Logger(),
		commands.DefaultIO(),
		container.Config().MaxMessageBytes,
		cmd.Bool("steps"),
	)
}

func getRSACommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "run",
			Usage:  "Prompt for a line, encrypt and decrypt it byte by byte, printing every step",
			Flags:  []cli.Flag{stepsFlag()},
			Action: runAction,
		},
		{
			Name:  "encrypt",
			Usage: "Read one line from stdin and print its ciphertext units",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, os.Stderr)

				transcodeUseCase, err := container.TranscodeUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					transcodeUseCase,
					container.Logger(),
					commands.DefaultIO(),
					container.Config().MaxMessageBytes,
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt ciphertext units given as decimal arguments",
			ArgsUsage: "<unit> [unit...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, os.Stderr)

				transcodeUseCase, err := container.TranscodeUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					transcodeUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "params",
			Usage: "Print the key parameters",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, os.Stderr)

				params, err := container.KeyParams()
				if err != nil {
					return err
				}

				return commands.RunParams(commands.DefaultIO(), params, cmd.String("format"))
			},
		},
		{
			Name:  "verify",
			Usage: "Check every residue of n against the key parameters and a reference implementation",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, os.Stderr)

				verifyUseCase, err := container.VerifyUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerify(
					ctx,
					verifyUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("format"),
				)
			},
		},
	}
}
