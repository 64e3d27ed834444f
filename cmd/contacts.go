package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// ContactsCommand creates the contacts command
func ContactsCommand() *cli.Command {
	return &cli.Command{
		Name:  "contacts",
		Usage: "List the contacts of a workgroup",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "group",
				Usage:    "Workgroup UUID",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return listContacts(ctx, c)
		},
	}
}

func listContacts(ctx context.Context, c *cli.Command) error {
	_, profile, err := loadProfile(c.String("config"), c.String("profile"))
	if err != nil {
		return err
	}
	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	contacts, err := client.Contacts.List(ctx, c.String("group"))
	if err != nil {
		return fmt.Errorf("listing contacts: %w", err)
	}

	for _, contact := range contacts {
		line := contact.Name
		if contact.Organization != "" && contact.Organization != contact.Name {
			line += " - " + contact.Organization
		}
		if contact.Email != "" {
			line += " <" + contact.Email + ">"
		}
		fmt.Printf("%s  %s\n", contact.ID, line)
	}
	fmt.Println(summaryStyle.Render(fmt.Sprintf("%d contact(s)", len(contacts))))
	return nil
}
