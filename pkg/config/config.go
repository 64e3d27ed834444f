package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// Config is the on-disk configuration: a set of named credential profiles
// plus local storage settings for the CLI snapshot store.
type Config struct {
	DefaultProfile string             `toml:"default_profile"`
	StorageDir     string             `toml:"storage_dir"`
	Profiles       map[string]Profile `toml:"profiles"`
}

// Profile holds the credentials and platform settings for one API
// application or user.
type Profile struct {
	// AuthMode selects the OAuth2 flow: "group" (client credentials) or
	// "user_legacy" (resource owner password credentials).
	AuthMode     string `toml:"auth_mode"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	// Username and Password are only used with the user_legacy mode.
	Username string `toml:"username,omitempty"`
	Password string `toml:"password,omitempty"`
	// Platform is "prod", "qa" or "custom".
	Platform string `toml:"platform"`
	// APIURL and IDURL are only read when Platform is "custom".
	APIURL string `toml:"api_url,omitempty"`
	IDURL  string `toml:"id_url,omitempty"`
	// Language sets the Accept-Language for API responses ("en" or "fr").
	Language string `toml:"language,omitempty"`
	// Timeout bounds each HTTP request. Defaults to 45s.
	Timeout Duration `toml:"timeout,omitempty"`
	// MaxWorkers bounds the whole-results search fan-out. Defaults to 10.
	MaxWorkers int `toml:"max_workers,omitempty"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func GetDefaultConfig() (*Config, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return nil, fmt.Errorf("getting default storage directory: %w", err)
	}
	return &Config{
		DefaultProfile: "default",
		StorageDir:     storageDir,
		Profiles:       make(map[string]Profile),
	}, nil
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.StorageDir == "" {
		storageDir, err := GetDefaultStorageDir()
		if err != nil {
			return nil, fmt.Errorf("getting default storage directory: %w", err)
		}
		config.StorageDir = storageDir
	}

	if config.DefaultProfile == "" {
		config.DefaultProfile = "default"
	}

	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0600)
}

// GetProfile returns the named profile, or the default one when name is
// empty, with defaults applied.
func (c *Config) GetProfile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found in configuration", name)
	}

	if profile.AuthMode == "" {
		profile.AuthMode = "group"
	}
	if profile.Platform == "" {
		profile.Platform = "prod"
	}
	if profile.Language == "" {
		profile.Language = "en"
	}
	if profile.Timeout.Duration == 0 {
		profile.Timeout = Duration{45 * time.Second}
	}
	if profile.MaxWorkers == 0 {
		profile.MaxWorkers = 10
	}
	return profile, nil
}

// ListProfiles returns the configured profile names.
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// GetDefaultStorageDir returns the default storage directory for the local
// snapshot database.
func GetDefaultStorageDir() (string, error) {
	// Use XDG_DATA_HOME if set, otherwise use ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	storageDir := filepath.Join(dataDir, "isogeo")

	if err := os.MkdirAll(storageDir, 0755); err != nil {
		return "", fmt.Errorf("creating storage directory %s: %w", storageDir, err)
	}

	return storageDir, nil
}

// GetDefaultDBPath returns the default snapshot database path.
func GetDefaultDBPath() (string, error) {
	storageDir, err := GetDefaultStorageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(storageDir, "snapshot.db"), nil
}

// GetConfigDir returns the configuration directory.
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	appConfigDir := filepath.Join(configDir, "isogeo")

	if err := os.MkdirAll(appConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", appConfigDir, err)
	}

	return appConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
