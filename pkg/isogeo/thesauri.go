package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// ThesauriService handles the thesaurus routes of the API.
type ThesauriService service

// List returns the thesauri available to the authenticated identity.
func (s *ThesauriService) List(ctx context.Context) ([]models.Thesaurus, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "thesauri", nil, nil)
	if err != nil {
		return nil, err
	}

	var thesauri []models.Thesaurus
	if _, err := s.client.do(req, &thesauri); err != nil {
		return nil, err
	}
	return thesauri, nil
}

// Get returns one thesaurus.
func (s *ThesauriService) Get(ctx context.Context, thesaurusID string) (*models.Thesaurus, error) {
	if err := checkUUID("thesaurus", thesaurusID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("thesauri/%s", thesaurusID), nil, nil)
	if err != nil {
		return nil, err
	}

	var thesaurus models.Thesaurus
	if _, err := s.client.do(req, &thesaurus); err != nil {
		return nil, err
	}
	return &thesaurus, nil
}
