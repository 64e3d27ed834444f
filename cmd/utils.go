package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/geoapis/go-isogeo/pkg/auth"
	"github.com/geoapis/go-isogeo/pkg/config"
	"github.com/geoapis/go-isogeo/pkg/isogeo"
)

// loadProfile loads the configuration and resolves the requested profile
// (or the default one when profileName is empty).
func loadProfile(configPath, profileName string) (*config.Config, config.Profile, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, config.Profile{}, fmt.Errorf("loading config: %w", err)
	}

	profile, err := cfg.GetProfile(profileName)
	if err != nil {
		return nil, config.Profile{}, err
	}
	return cfg, profile, nil
}

// newAPIClient authenticates a profile and builds an API client from it.
func newAPIClient(ctx context.Context, profile config.Profile) (*isogeo.Client, error) {
	var custom *auth.CustomURLs
	if profile.Platform == auth.PlatformCustom {
		custom = &auth.CustomURLs{APIURL: profile.APIURL, IDURL: profile.IDURL}
	}

	platform, err := auth.ResolvePlatform(profile.Platform, custom)
	if err != nil {
		return nil, fmt.Errorf("resolving platform: %w", err)
	}

	creds := auth.Credentials{
		Mode:         profile.AuthMode,
		ClientID:     profile.ClientID,
		ClientSecret: profile.ClientSecret,
		Username:     profile.Username,
		Password:     profile.Password,
	}

	httpClient, err := auth.Client(ctx, creds, platform)
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}
	httpClient.Timeout = profile.Timeout.Duration

	return isogeo.NewClient(httpClient,
		isogeo.WithPlatform(platform),
		isogeo.WithLanguage(profile.Language),
		isogeo.WithMaxWorkers(profile.MaxWorkers),
	)
}

// snapshotPath returns the snapshot database location for a config.
func snapshotPath(cfg *config.Config) (string, error) {
	if cfg.StorageDir != "" {
		return filepath.Join(cfg.StorageDir, "snapshot.db"), nil
	}
	return config.GetDefaultDBPath()
}
