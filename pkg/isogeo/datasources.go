package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// DatasourcesService handles the scan entry points of a workgroup.
type DatasourcesService service

// List returns the datasources of a workgroup and refreshes the name cache.
func (s *DatasourcesService) List(ctx context.Context, workgroupID string) ([]models.Datasource, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/data-sources", workgroupID), nil, nil)
	if err != nil {
		return nil, err
	}

	var sources []models.Datasource
	if _, err := s.client.do(req, &sources); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(sources))
	for _, src := range sources {
		entries[src.Name] = src.ID
	}
	s.client.cacheReplace(cacheDatasources, entries)

	return sources, nil
}

// Get returns one datasource of a workgroup.
func (s *DatasourcesService) Get(ctx context.Context, workgroupID, datasourceID string) (*models.Datasource, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("datasource", datasourceID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/data-sources/%s", workgroupID, datasourceID), nil, nil)
	if err != nil {
		return nil, err
	}

	var source models.Datasource
	if _, err := s.client.do(req, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// Create registers a datasource on a workgroup. A datasource whose name or
// location is already registered is rejected with ErrAlreadyExists.
func (s *DatasourcesService) Create(ctx context.Context, workgroupID string, source *models.Datasource) (*models.Datasource, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if source.Name == "" || source.Location == "" {
		return nil, fmt.Errorf("a datasource requires a name and a location")
	}

	if s.client.cacheEmpty(cacheDatasources) {
		if _, err := s.List(ctx, workgroupID); err != nil {
			return nil, err
		}
	}
	if _, exists := s.client.cacheLookup(cacheDatasources, source.Name); exists {
		return nil, fmt.Errorf("datasource %q: %w", source.Name, ErrAlreadyExists)
	}

	payload := struct {
		Location string `json:"location"`
		Name     string `json:"name"`
	}{source.Location, source.Name}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/data-sources", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Datasource
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	s.client.cacheStore(cacheDatasources, created.Name, created.ID)
	return &created, nil
}

// Update modifies a datasource.
func (s *DatasourcesService) Update(ctx context.Context, workgroupID string, source *models.Datasource) (*models.Datasource, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("datasource", source.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s/data-sources/%s", workgroupID, source.ID), nil, source)
	if err != nil {
		return nil, err
	}

	var updated models.Datasource
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete unregisters a datasource from a workgroup.
func (s *DatasourcesService) Delete(ctx context.Context, workgroupID, datasourceID string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}
	if err := checkUUID("datasource", datasourceID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s/data-sources/%s", workgroupID, datasourceID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
