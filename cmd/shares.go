package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// SharesCommand creates the shares command
func SharesCommand() *cli.Command {
	return &cli.Command{
		Name:  "shares",
		Usage: "List the shares feeding the application",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "group",
				Usage: "Only list the shares of this workgroup UUID",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listShares(ctx, c)
		},
	}
}

func listShares(ctx context.Context, c *cli.Command) error {
	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	shares, err := client.Shares.List(ctx, c.String("group"))
	if err != nil {
		return fmt.Errorf("listing shares: %w", err)
	}

	for _, share := range shares {
		fmt.Println(titleStyle.Render(share.Name))
		fmt.Println(metaStyle.Render("  " + share.ID))
		if share.Creator != nil && share.Creator.Contact != nil {
			fmt.Printf("  owner: %s\n", share.Creator.Contact.Name)
		}
		fmt.Printf("  catalogs: %d, applications: %d\n", len(share.Catalogs), len(share.Applications))
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d share(s)", len(shares))))
	return nil
}
