package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// SpecificationsService handles the specification routes of the API.
type SpecificationsService service

// List returns the specifications available to a workgroup, both the
// platform defaults and the workgroup's own. The name cache is refreshed.
func (s *SpecificationsService) List(ctx context.Context, workgroupID string, include ...string) ([]models.Specification, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/specifications", workgroupID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var specs []models.Specification
	if _, err := s.client.do(req, &specs); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(specs))
	for _, spec := range specs {
		entries[spec.Name] = spec.ID
	}
	s.client.cacheReplace(cacheSpecifications, entries)

	return specs, nil
}

// Get returns one specification.
func (s *SpecificationsService) Get(ctx context.Context, specificationID string) (*models.Specification, error) {
	if err := checkUUID("specification", specificationID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("specifications/%s", specificationID), nil, nil)
	if err != nil {
		return nil, err
	}

	var spec models.Specification
	if _, err := s.client.do(req, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Create adds a specification to a workgroup. A specification whose name
// already exists is rejected with ErrAlreadyExists.
func (s *SpecificationsService) Create(ctx context.Context, workgroupID string, spec *models.Specification) (*models.Specification, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("a specification requires a name")
	}

	if s.client.cacheEmpty(cacheSpecifications) {
		if _, err := s.List(ctx, workgroupID); err != nil {
			return nil, err
		}
	}
	if _, exists := s.client.cacheLookup(cacheSpecifications, spec.Name); exists {
		return nil, fmt.Errorf("specification %q: %w", spec.Name, ErrAlreadyExists)
	}

	payload := struct {
		Link      string `json:"link,omitempty"`
		Name      string `json:"name"`
		Published string `json:"published,omitempty"`
	}{spec.Link, spec.Name, spec.Published}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/specifications", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Specification
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	s.client.cacheStore(cacheSpecifications, created.Name, created.ID)
	return &created, nil
}

// Update modifies a workgroup specification. Platform specifications are
// read only.
func (s *SpecificationsService) Update(ctx context.Context, workgroupID string, spec *models.Specification) (*models.Specification, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("specification", spec.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s/specifications/%s", workgroupID, spec.ID), nil, spec)
	if err != nil {
		return nil, err
	}

	var updated models.Specification
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a specification from a workgroup.
func (s *SpecificationsService) Delete(ctx context.Context, workgroupID, specificationID string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}
	if err := checkUUID("specification", specificationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s/specifications/%s", workgroupID, specificationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
