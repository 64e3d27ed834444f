package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// AboutService reports the versions of the platform components. These
// routes do not require authentication.
type AboutService service

// Version returns the running API version.
func (s *AboutService) Version(ctx context.Context) (*models.About, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "about", nil, nil)
	if err != nil {
		return nil, err
	}

	var about models.About
	if _, err := s.client.do(req, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// Component returns the version of one platform component (e.g. database).
func (s *AboutService) Component(ctx context.Context, component string) (*models.About, error) {
	if component == "" {
		return nil, fmt.Errorf("a component name is required")
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("about/%s", component), nil, nil)
	if err != nil {
		return nil, err
	}

	var about models.About
	if _, err := s.client.do(req, &about); err != nil {
		return nil, err
	}
	return &about, nil
}

// DatabaseVersion returns the running database version.
func (s *AboutService) DatabaseVersion(ctx context.Context) (*models.About, error) {
	return s.Component(ctx, "database")
}
