package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{
		DefaultProfile: "work",
		StorageDir:     tmpDir,
		Profiles: map[string]Profile{
			"work": {
				AuthMode:     "group",
				ClientID:     "my-app-ab7e9a4b40f5472c8dd37e0b85c4e323",
				ClientSecret: "secret",
				Platform:     "qa",
				Language:     "fr",
				Timeout:      Duration{30 * time.Second},
				MaxWorkers:   5,
			},
		},
	}

	if err := cfg.SaveConfig(configPath); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	profile, err := loaded.GetProfile("")
	if err != nil {
		t.Fatalf("getting default profile: %v", err)
	}
	if profile.Platform != "qa" || profile.Language != "fr" {
		t.Errorf("unexpected profile: %+v", profile)
	}
	if profile.Timeout.Duration != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", profile.Timeout.Duration)
	}
	if profile.MaxWorkers != 5 {
		t.Errorf("expected 5 workers, got %d", profile.MaxWorkers)
	}
}

func TestProfileDefaults(t *testing.T) {
	cfg := &Config{
		DefaultProfile: "default",
		Profiles: map[string]Profile{
			"default": {
				ClientID:     "my-app-ab7e9a4b40f5472c8dd37e0b85c4e323",
				ClientSecret: "secret",
			},
		},
	}

	profile, err := cfg.GetProfile("default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.AuthMode != "group" {
		t.Errorf("expected group auth mode, got %q", profile.AuthMode)
	}
	if profile.Platform != "prod" {
		t.Errorf("expected prod platform, got %q", profile.Platform)
	}
	if profile.Language != "en" {
		t.Errorf("expected en language, got %q", profile.Language)
	}
	if profile.Timeout.Duration != 45*time.Second {
		t.Errorf("expected 45s timeout, got %v", profile.Timeout.Duration)
	}
	if profile.MaxWorkers != 10 {
		t.Errorf("expected 10 workers, got %d", profile.MaxWorkers)
	}
}

func TestMissingProfile(t *testing.T) {
	cfg := &Config{DefaultProfile: "default", Profiles: map[string]Profile{}}
	if _, err := cfg.GetProfile("nope"); err == nil {
		t.Error("expected an error for a missing profile")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultProfile != "default" {
		t.Errorf("expected default profile name, got %q", cfg.DefaultProfile)
	}
	if cfg.StorageDir == "" {
		t.Error("expected a default storage dir")
	}
}

func TestSaveTemplateConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{}
	if err := cfg.SaveTemplateConfig(configPath); err != nil {
		t.Fatalf("saving template: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected a non-empty template")
	}

	// the template must stay valid TOML
	if _, err := LoadConfig(configPath); err != nil {
		t.Errorf("template does not load: %v", err)
	}
}
