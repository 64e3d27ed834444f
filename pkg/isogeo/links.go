package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// LinksService handles the associated links of a record.
type LinksService service

// Kinds returns the matrix of link kinds and the actions each accepts.
func (s *LinksService) Kinds(ctx context.Context) ([]models.LinkKind, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "link-kinds", nil, nil)
	if err != nil {
		return nil, err
	}

	var kinds []models.LinkKind
	if _, err := s.client.do(req, &kinds); err != nil {
		return nil, err
	}
	return kinds, nil
}

// List returns the links of a record.
func (s *LinksService) List(ctx context.Context, metadataID string) ([]models.Link, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/links", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var links []models.Link
	if _, err := s.client.do(req, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// Get returns one link of a record.
func (s *LinksService) Get(ctx context.Context, metadataID, linkID string) (*models.Link, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("link", linkID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/links/%s", metadataID, linkID), nil, nil)
	if err != nil {
		return nil, err
	}

	var link models.Link
	if _, err := s.client.do(req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// Create adds a link to a record. The kind/action pairing must follow the
// matrix returned by Kinds.
func (s *LinksService) Create(ctx context.Context, metadataID string, link *models.Link) (*models.Link, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if link.Title == "" || link.URL == "" {
		return nil, fmt.Errorf("a link requires a title and a url")
	}

	payload := struct {
		Actions []string `json:"actions,omitempty"`
		Kind    string   `json:"kind,omitempty"`
		Title   string   `json:"title"`
		Type    string   `json:"type,omitempty"`
		URL     string   `json:"url"`
	}{link.Actions, link.Kind, link.Title, link.Type, link.URL}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/links", metadataID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Link
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies a link of a record.
func (s *LinksService) Update(ctx context.Context, metadataID string, link *models.Link) (*models.Link, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("link", link.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/links/%s", metadataID, link.ID), nil, link)
	if err != nil {
		return nil, err
	}

	var updated models.Link
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a link from a record.
func (s *LinksService) Delete(ctx context.Context, metadataID, linkID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("link", linkID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/links/%s", metadataID, linkID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
