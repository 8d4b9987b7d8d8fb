package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passvault/cmd/app/commands"
	"github.com/allisson/passvault/internal/app"
	"github.com/allisson/passvault/internal/config"
)

func getAccountCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "list-accounts",
			Usage: "List authenticated accounts and their lock status",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				state, err := container.StateUseCase()
				if err != nil {
					return err
				}

				return commands.RunListAccounts(
					ctx,
					state,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "purge-account",
			Usage: "Remove an account and its keys from every storage location",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User ID to purge",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				state, err := container.StateUseCase()
				if err != nil {
					return err
				}
				keys, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunPurgeAccount(
					ctx,
					state,
					keys,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("user-id"),
					cmd.String("format"),
				)
			},
		},
	}
}
