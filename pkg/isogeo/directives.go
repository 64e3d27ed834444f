package isogeo

import (
	"context"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// DirectivesService handles the EU environment directive routes.
type DirectivesService service

// List returns the directives usable as INSPIRE limitations.
func (s *DirectivesService) List(ctx context.Context) ([]models.Directive, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "directives", nil, nil)
	if err != nil {
		return nil, err
	}

	var directives []models.Directive
	if _, err := s.client.do(req, &directives); err != nil {
		return nil, err
	}
	return directives, nil
}
