package main

import (
	"context"

	"github.com/allisson/go-env"
	"github.com/urfave/cli/v3"

	"github.com/allisson/passvault/cmd/app/commands"
	"github.com/allisson/passvault/internal/app"
	"github.com/allisson/passvault/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "fingerprint",
			Usage: "Print the fingerprint phrase of a user's public key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User ID the fingerprint is bound to",
				},
				&cli.StringFlag{
					Name:     "public-key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Base64-encoded SPKI public key",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunFingerprint(
					container.KeyManager(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("user-id"),
					cmd.String("public-key"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "hash-password",
			Usage: "Derive the master key and print the server and local password hashes",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Account email, used as the KDF salt",
				},
				&cli.IntFlag{
					Name:    "iterations",
					Aliases: []string{"i"},
					Value:   0,
					Usage:   "PBKDF2 iterations (0 uses the default)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunHashPassword(
					container.KdfService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("email"),
					env.GetString("PASSVAULT_PASSWORD", ""),
					int(cmd.Int("iterations")),
					cmd.String("format"),
				)
			},
		},
	}
}
