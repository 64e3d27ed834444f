package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CatalogsCommand creates the catalogs command
func CatalogsCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalogs",
		Usage: "List and inspect the catalogs of a workgroup",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "group",
				Usage:    "Workgroup UUID",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listCatalogs(ctx, c)
		},
		Commands: []*cli.Command{
			{
				Name:      "stats",
				Usage:     "Show the content summary of a catalog",
				ArgsUsage: "<catalog-uuid>",
				Action: func(ctx context.Context, c *cli.Command) error {
					return catalogStats(ctx, c, c.Args().First())
				},
			},
		},
	}
}

func listCatalogs(ctx context.Context, c *cli.Command) error {
	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	catalogs, err := client.Catalogs.List(ctx, c.String("group"))
	if err != nil {
		return fmt.Errorf("listing catalogs: %w", err)
	}

	for _, cat := range catalogs {
		scan := ""
		if cat.Scan {
			scan = " [scan]"
		}
		fmt.Printf("%s  %s%s\n", cat.ID, cat.Name, scan)
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d catalog(s)", len(catalogs))))
	return nil
}

func catalogStats(ctx context.Context, c *cli.Command, id string) error {
	if id == "" {
		return fmt.Errorf("a catalog UUID is required")
	}

	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	stats, err := client.Catalogs.Statistics(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching catalog statistics: %w", err)
	}

	fmt.Printf("contacts:  %d\n", stats.Contacts)
	fmt.Printf("formats:   %d\n", stats.Formats)
	fmt.Printf("keywords:  %d\n", stats.Keywords)
	fmt.Printf("owners:    %d\n", stats.Owners)
	fmt.Printf("resources: %d\n", stats.Resources)
	return nil
}
