package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// CoordinateSystemsService handles the EPSG reference system routes.
type CoordinateSystemsService service

// List returns the reference systems known by the platform. With a
// workgroup UUID, only the systems selected by that workgroup are returned.
func (s *CoordinateSystemsService) List(ctx context.Context, workgroupID string) ([]models.CoordinateSystem, error) {
	path := "coordinate-systems"
	if workgroupID != "" {
		if err := checkUUID("workgroup", workgroupID); err != nil {
			return nil, err
		}
		path = fmt.Sprintf("groups/%s/coordinate-systems", workgroupID)
	}

	req, err := s.client.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var systems []models.CoordinateSystem
	if _, err := s.client.do(req, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}

// Get returns one reference system by EPSG code.
func (s *CoordinateSystemsService) Get(ctx context.Context, code string) (*models.CoordinateSystem, error) {
	if code == "" {
		return nil, fmt.Errorf("an EPSG code is required")
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("coordinate-systems/%s", code), nil, nil)
	if err != nil {
		return nil, err
	}

	var srs models.CoordinateSystem
	if _, err := s.client.do(req, &srs); err != nil {
		return nil, err
	}
	return &srs, nil
}

// Select adds a reference system to the workgroup selection, optionally
// with a local alias.
func (s *CoordinateSystemsService) Select(ctx context.Context, workgroupID, code, alias string) (*models.CoordinateSystem, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("an EPSG code is required")
	}

	payload := struct {
		Alias string `json:"alias,omitempty"`
		Code  string `json:"code"`
	}{alias, code}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s/coordinate-systems/%s", workgroupID, code), nil, payload)
	if err != nil {
		return nil, err
	}

	var srs models.CoordinateSystem
	if _, err := s.client.do(req, &srs); err != nil {
		return nil, err
	}
	return &srs, nil
}

// Unselect removes a reference system from the workgroup selection.
func (s *CoordinateSystemsService) Unselect(ctx context.Context, workgroupID, code string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}
	if code == "" {
		return fmt.Errorf("an EPSG code is required")
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s/coordinate-systems/%s", workgroupID, code), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// AssociateMetadata sets the reference system of a record.
func (s *CoordinateSystemsService) AssociateMetadata(ctx context.Context, metadataID, code string) (*models.CoordinateSystem, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("an EPSG code is required")
	}

	payload := struct {
		Code string `json:"code"`
	}{code}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/coordinate-system", metadataID), nil, payload)
	if err != nil {
		return nil, err
	}

	var srs models.CoordinateSystem
	if _, err := s.client.do(req, &srs); err != nil {
		return nil, err
	}
	return &srs, nil
}

// DissociateMetadata clears the reference system of a record.
func (s *CoordinateSystemsService) DissociateMetadata(ctx context.Context, metadataID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/coordinate-system", metadataID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
