package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// MetadataCommand creates the metadata command
func MetadataCommand() *cli.Command {
	return &cli.Command{
		Name:  "metadata",
		Usage: "Inspect and manage individual records",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show one record",
				ArgsUsage: "<record-uuid>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "include",
						Usage: "Subresources to embed (contacts, events, keywords...)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return showMetadata(ctx, c, c.Args().First())
				},
			},
			{
				Name:      "xml",
				Usage:     "Export one record as ISO 19139 XML",
				ArgsUsage: "<record-uuid>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "Write to a file instead of stdout",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return exportMetadataXML(ctx, c, c.Args().First())
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete one record",
				ArgsUsage: "<record-uuid>",
				Action: func(ctx context.Context, c *cli.Command) error {
					return deleteMetadata(ctx, c, c.Args().First())
				},
			},
		},
	}
}

func showMetadata(ctx context.Context, c *cli.Command, id string) error {
	if id == "" {
		return fmt.Errorf("a record UUID is required")
	}

	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	md, err := client.Metadata.Get(ctx, id, c.StringSlice("include")...)
	if err != nil {
		return fmt.Errorf("fetching record: %w", err)
	}

	printRecord(*md)
	if md.Abstract != "" {
		fmt.Printf("\n%s\n", md.Abstract)
	}
	if len(md.Keywords) > 0 {
		fmt.Println()
		for _, kw := range md.Keywords {
			fmt.Printf("  #%s", kw.Text)
		}
		fmt.Println()
	}
	printContacts(md.Contacts)
	printEvents(md.Events)
	return nil
}

func printContacts(contacts []models.ContactRole) {
	if len(contacts) == 0 {
		return
	}
	fmt.Println("\nContacts:")
	for _, cr := range contacts {
		if cr.Contact == nil {
			continue
		}
		fmt.Printf("  %s (%s)\n", cr.Contact.Name, cr.Role)
	}
}

func printEvents(events []models.Event) {
	if len(events) == 0 {
		return
	}
	fmt.Println("\nHistory:")
	for _, ev := range events {
		line := fmt.Sprintf("  %s %s", ev.Date, ev.Kind)
		if ev.Description != "" {
			line += ": " + ev.Description
		}
		fmt.Println(line)
	}
}

func exportMetadataXML(ctx context.Context, c *cli.Command, id string) error {
	if id == "" {
		return fmt.Errorf("a record UUID is required")
	}

	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	data, err := client.Metadata.DownloadXML(ctx, id)
	if err != nil {
		return fmt.Errorf("exporting record: %w", err)
	}

	if output := c.String("output"); output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Printf("Record exported to %s\n", output)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

func deleteMetadata(ctx context.Context, c *cli.Command, id string) error {
	if id == "" {
		return fmt.Errorf("a record UUID is required")
	}

	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	if err := client.Metadata.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	fmt.Printf("Record %s deleted\n", id)
	return nil
}
