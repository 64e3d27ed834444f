// Package auth handles OAuth2 authentication against the vendor ID server.
//
// Two flows are supported, matching what the API offers to registered
// applications:
//   - ModeGroup: Client Credentials grant, for applications acting on their
//     own behalf (read-only API access).
//   - ModeUserLegacy: Resource Owner Password Credentials grant, for scripts
//     running server-side with user credentials.
//
// Tokens are renewed transparently: every request issued through the client
// returned by Client goes through an oauth2.TokenSource that refreshes the
// bearer before it expires.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Authentication modes.
const (
	ModeGroup      = "group"
	ModeUserLegacy = "user_legacy"
)

// Credentials identifies a registered API application, plus user credentials
// when the user_legacy flow is used.
type Credentials struct {
	Mode         string
	ClientID     string
	ClientSecret string
	// Username and Password are required with ModeUserLegacy only.
	Username string
	Password string
}

// Validate checks the credential shapes the vendor enforces: the client ID
// ends with a UUID and the secret is 64 characters long.
func (c Credentials) Validate() error {
	switch c.Mode {
	case ModeGroup, ModeUserLegacy:
	default:
		return fmt.Errorf("auth mode must be one of: %s | %s", ModeGroup, ModeUserLegacy)
	}

	if c.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}
	// client IDs look like "my-app-<uuid>": the last dash-separated
	// segments form a UUID
	parts := strings.Split(c.ClientID, "-")
	tail := parts[len(parts)-1]
	if err := uuid.Validate(tail); err != nil {
		return fmt.Errorf("client ID is malformed: it must end with a UUID")
	}

	if len(c.ClientSecret) != 64 {
		return fmt.Errorf("client secret is malformed: it must be 64 characters long, got %d", len(c.ClientSecret))
	}

	if c.Mode == ModeUserLegacy && (c.Username == "" || c.Password == "") {
		return fmt.Errorf("user_legacy mode requires a username and a password")
	}

	return nil
}

// TokenSource builds a refreshing token source for the credentials against
// the given platform. The returned source fetches a first token lazily.
func TokenSource(ctx context.Context, creds Credentials, platform Platform) (oauth2.TokenSource, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	switch creds.Mode {
	case ModeGroup:
		cfg := &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     platform.TokenURL(),
		}
		return cfg.TokenSource(ctx), nil
	case ModeUserLegacy:
		cfg := &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: platform.TokenURL()},
		}
		token, err := cfg.PasswordCredentialsToken(ctx, creds.Username, creds.Password)
		if err != nil {
			return nil, fmt.Errorf("fetching token with user credentials: %w", err)
		}
		return cfg.TokenSource(ctx, token), nil
	default:
		return nil, fmt.Errorf("auth mode %q is not implemented", creds.Mode)
	}
}

// Client returns an HTTP client that attaches and renews the bearer token on
// every request.
func Client(ctx context.Context, creds Credentials, platform Platform) (*http.Client, error) {
	ts, err := TokenSource(ctx, creds, platform)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, ts), nil
}
