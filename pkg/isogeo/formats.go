package isogeo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// FormatsService handles the data format routes of the API.
type FormatsService service

// List returns the formats known by the platform.
func (s *FormatsService) List(ctx context.Context) ([]models.Format, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "formats", nil, nil)
	if err != nil {
		return nil, err
	}

	var formats []models.Format
	if _, err := s.client.do(req, &formats); err != nil {
		return nil, err
	}
	return formats, nil
}

// Get returns one format by code (e.g. "shp", "postgis").
func (s *FormatsService) Get(ctx context.Context, code string) (*models.Format, error) {
	if code == "" {
		return nil, fmt.Errorf("a format code is required")
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("formats/%s", code), nil, nil)
	if err != nil {
		return nil, err
	}

	var format models.Format
	if _, err := s.client.do(req, &format); err != nil {
		return nil, err
	}
	return &format, nil
}

// Search looks up formats matching a free-text query.
func (s *FormatsService) Search(ctx context.Context, query string) ([]models.Format, error) {
	q := url.Values{}
	if query != "" {
		q.Set("query", query)
	}

	req, err := s.client.newRequest(ctx, http.MethodGet, "formats/resource/search", q, nil)
	if err != nil {
		return nil, err
	}

	var formats []models.Format
	if _, err := s.client.do(req, &formats); err != nil {
		return nil, err
	}
	return formats, nil
}

// Create registers a non-geographic format on the platform. Reserved to
// staff applications.
func (s *FormatsService) Create(ctx context.Context, format *models.Format) (*models.Format, error) {
	if format.Code == "" || format.Name == "" {
		return nil, fmt.Errorf("a format requires a code and a name")
	}

	payload := struct {
		Aliases  []string `json:"aliases,omitempty"`
		Code     string   `json:"code"`
		Name     string   `json:"name"`
		Type     string   `json:"type,omitempty"`
		Versions []string `json:"versions,omitempty"`
	}{format.Aliases, format.Code, format.Name, format.Type, format.Versions}

	req, err := s.client.newRequest(ctx, http.MethodPost, "formats", nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Format
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies a format. Reserved to staff applications.
func (s *FormatsService) Update(ctx context.Context, format *models.Format) (*models.Format, error) {
	if format.Code == "" {
		return nil, fmt.Errorf("a format code is required")
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("formats/%s", format.Code), nil, format)
	if err != nil {
		return nil, err
	}

	var updated models.Format
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a format. Reserved to staff applications.
func (s *FormatsService) Delete(ctx context.Context, code string) error {
	if code == "" {
		return fmt.Errorf("a format code is required")
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("formats/%s", code), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
