package cmd

import (
	"context"
	"fmt"

	"github.com/geoapis/go-isogeo/pkg/isogeo"
	"github.com/geoapis/go-isogeo/pkg/version"
	"github.com/urfave/cli/v3"
)

// VersionCommand creates the version command
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "remote",
				Usage: "Also query the platform component versions",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println(version.BuildVersion())
			if !c.Bool("remote") {
				return nil
			}
			return remoteVersions(ctx)
		},
	}
}

func remoteVersions(ctx context.Context) error {
	// the about routes are public, no credentials needed
	client, err := isogeo.NewClient(nil)
	if err != nil {
		return err
	}

	api, err := client.About.Version(ctx)
	if err != nil {
		return fmt.Errorf("querying API version: %w", err)
	}
	fmt.Printf("api: %s\n", api.Version)

	db, err := client.About.DatabaseVersion(ctx)
	if err != nil {
		return fmt.Errorf("querying database version: %w", err)
	}
	fmt.Printf("database: %s\n", db.Version)
	return nil
}
