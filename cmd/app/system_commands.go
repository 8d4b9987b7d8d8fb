package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/passvault/cmd/app/commands"
	"github.com/allisson/passvault/internal/app"
	"github.com/allisson/passvault/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "migrate",
			Usage: "Create the state tables for the postgres or mysql storage driver",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				container.Logger().Debug("passvault", slog.String("version", version))
				return commands.RunMigrations(container.Logger(), cfg.StateDatabaseDriver(), cfg.StateDatabaseDSN())
			},
		},
	}
}
