package cmd

import (
	"context"
	"fmt"

	"github.com/geoapis/go-isogeo/pkg/auth"
	"github.com/urfave/cli/v3"
)

// LoginCommand creates the login command
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Verify the configured credentials against the platform",
		Action: func(ctx context.Context, c *cli.Command) error {
			return login(ctx, c.String("config"), c.String("profile"))
		},
	}
}

func login(ctx context.Context, configPath, profileName string) error {
	_, profile, err := loadProfile(configPath, profileName)
	if err != nil {
		return err
	}

	client, err := newAPIClient(ctx, profile)
	if err != nil {
		return err
	}

	// a cheap authenticated call proves the token works
	switch profile.AuthMode {
	case auth.ModeUserLegacy:
		user, err := client.Account.Get(ctx)
		if err != nil {
			return fmt.Errorf("verifying credentials: %w", err)
		}
		name := user.ID
		if user.Contact != nil && user.Contact.Name != "" {
			name = user.Contact.Name
		}
		fmt.Printf("Authenticated as %s on %s\n", name, client.Platform().Name)
	default:
		shares, err := client.Shares.List(ctx, "")
		if err != nil {
			return fmt.Errorf("verifying credentials: %w", err)
		}
		fmt.Printf("Authenticated on %s, application fed by %d share(s)\n", client.Platform().Name, len(shares))
		for _, share := range shares {
			fmt.Printf("  - %s (%s)\n", share.Name, share.ID)
		}
	}

	return nil
}
