package auth

import (
	"strings"
	"testing"
)

const testSecret = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestResolvePlatform(t *testing.T) {
	prod, err := ResolvePlatform("prod", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.APIURL != "https://v1.api.isogeo.com" {
		t.Errorf("unexpected prod API URL: %s", prod.APIURL)
	}
	if prod.TokenURL() != "https://id.api.isogeo.com/oauth/token" {
		t.Errorf("unexpected token URL: %s", prod.TokenURL())
	}

	// platform names are case insensitive
	if _, err := ResolvePlatform("QA", nil); err != nil {
		t.Errorf("unexpected error for QA: %v", err)
	}

	if _, err := ResolvePlatform("staging", nil); err == nil {
		t.Error("expected an error for an unknown platform")
	}
}

func TestResolveCustomPlatform(t *testing.T) {
	if _, err := ResolvePlatform("custom", nil); err == nil {
		t.Error("expected an error without custom URLs")
	}

	p, err := ResolvePlatform("custom", &CustomURLs{APIURL: "https://api.example.com/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.APIURL != "https://api.example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", p.APIURL)
	}
	// the ID server defaults to the API host
	if p.TokenURL() != "https://api.example.com/oauth/token" {
		t.Errorf("unexpected token URL: %s", p.TokenURL())
	}
}

func TestCredentialsValidate(t *testing.T) {
	valid := Credentials{
		Mode:         ModeGroup,
		ClientID:     "my-app-ab7e9a4b40f5472c8dd37e0b85c4e323",
		ClientSecret: testSecret,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		mut   func(*Credentials)
		field string
	}{
		{"unknown mode", func(c *Credentials) { c.Mode = "oauth1" }, "mode"},
		{"empty client id", func(c *Credentials) { c.ClientID = "" }, "client ID"},
		{"client id without uuid", func(c *Credentials) { c.ClientID = "my-app-notanid" }, "client ID"},
		{"short secret", func(c *Credentials) { c.ClientSecret = "tooshort" }, "secret"},
		{"legacy without user", func(c *Credentials) { c.Mode = ModeUserLegacy }, "username"},
	}

	for _, tt := range tests {
		creds := valid
		tt.mut(&creds)
		err := creds.Validate()
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.field)) {
			t.Errorf("%s: error does not mention %q: %v", tt.name, tt.field, err)
		}
	}

	legacy := valid
	legacy.Mode = ModeUserLegacy
	legacy.Username = "someone@example.com"
	legacy.Password = "hunter2"
	if err := legacy.Validate(); err != nil {
		t.Errorf("unexpected error for complete legacy credentials: %v", err)
	}
}
