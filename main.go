package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/geoapis/go-isogeo/cmd"
	"github.com/geoapis/go-isogeo/pkg/config"
	applog "github.com/geoapis/go-isogeo/pkg/log"
)

func main() {
	app := &cli.Command{
		Name:  "isogeo",
		Usage: "Search and manage geographic metadata catalogs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Credential profile to use",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if c.Bool("debug") {
				applog.SetGlobalDebug(true)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.LoginCommand(),
			cmd.SearchCommand(),
			cmd.MetadataCommand(),
			cmd.CatalogsCommand(),
			cmd.ContactsCommand(),
			cmd.SharesCommand(),
			cmd.SyncCommand(),
			cmd.ExportCommand(),
			cmd.OfflineCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
