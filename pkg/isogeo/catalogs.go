package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// CatalogsService handles the catalog routes of the API.
type CatalogsService service

// statisticsTags are the facets accepted by the statistics-by-tag routes.
var statisticsTags = map[string]bool{
	"catalog":           true,
	"contact":           true,
	"coordinate-system": true,
	"format":            true,
	"inspire-theme":     true,
	"keyword":           true,
	"owner":             true,
}

// List returns the catalogs of a workgroup and refreshes the name cache.
func (s *CatalogsService) List(ctx context.Context, workgroupID string, include ...string) ([]models.Catalog, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/catalogs", workgroupID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var catalogs []models.Catalog
	if _, err := s.client.do(req, &catalogs); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(catalogs))
	for _, cat := range catalogs {
		entries[cat.Name] = cat.ID
	}
	s.client.cacheReplace(cacheCatalogs, entries)

	return catalogs, nil
}

// ListForMetadata returns the catalogs a record is associated with.
func (s *CatalogsService) ListForMetadata(ctx context.Context, metadataID string) ([]models.Catalog, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/catalogs", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var catalogs []models.Catalog
	if _, err := s.client.do(req, &catalogs); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// Get returns one catalog of a workgroup.
func (s *CatalogsService) Get(ctx context.Context, workgroupID, catalogID string, include ...string) (*models.Catalog, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("catalog", catalogID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/catalogs/%s", workgroupID, catalogID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var catalog models.Catalog
	if _, err := s.client.do(req, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Create adds a catalog to a workgroup. A catalog whose name already exists
// in the workgroup is rejected with ErrAlreadyExists.
func (s *CatalogsService) Create(ctx context.Context, workgroupID string, catalog *models.Catalog) (*models.Catalog, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	if s.client.cacheEmpty(cacheCatalogs) {
		if _, err := s.List(ctx, workgroupID); err != nil {
			return nil, err
		}
	}
	if _, exists := s.client.cacheLookup(cacheCatalogs, catalog.Name); exists {
		return nil, fmt.Errorf("catalog %q: %w", catalog.Name, ErrAlreadyExists)
	}

	// only the creation attributes are sent
	payload := struct {
		Code string `json:"code,omitempty"`
		Name string `json:"name"`
		Scan bool   `json:"$scan"`
	}{catalog.Code, catalog.Name, catalog.Scan}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/catalogs", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Catalog
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	s.client.cacheStore(cacheCatalogs, created.Name, created.ID)
	return &created, nil
}

// Update modifies a catalog of a workgroup.
func (s *CatalogsService) Update(ctx context.Context, workgroupID string, catalog *models.Catalog) (*models.Catalog, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("catalog", catalog.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s/catalogs/%s", workgroupID, catalog.ID), nil, catalog)
	if err != nil {
		return nil, err
	}

	var updated models.Catalog
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a catalog from a workgroup.
func (s *CatalogsService) Delete(ctx context.Context, workgroupID, catalogID string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}
	if err := checkUUID("catalog", catalogID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s/catalogs/%s", workgroupID, catalogID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Shares returns the shares a catalog feeds.
func (s *CatalogsService) Shares(ctx context.Context, catalogID string) ([]models.Share, error) {
	if err := checkUUID("catalog", catalogID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("catalogs/%s/shares", catalogID), nil, nil)
	if err != nil {
		return nil, err
	}

	var shares []models.Share
	if _, err := s.client.do(req, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// Statistics returns the content summary of a catalog.
func (s *CatalogsService) Statistics(ctx context.Context, catalogID string) (*models.CatalogStatistics, error) {
	if err := checkUUID("catalog", catalogID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("catalogs/%s/statistics", catalogID), nil, nil)
	if err != nil {
		return nil, err
	}

	var stats models.CatalogStatistics
	if _, err := s.client.do(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// StatisticsByTag breaks the catalog content down by one facet (keyword,
// owner, format...).
func (s *CatalogsService) StatisticsByTag(ctx context.Context, catalogID, tag string) ([]map[string]any, error) {
	if err := checkUUID("catalog", catalogID); err != nil {
		return nil, err
	}
	if !statisticsTags[tag] {
		return nil, fmt.Errorf("statistics facet %q is not accepted by the API", tag)
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("catalogs/%s/statistics/tag/%s", catalogID, tag), nil, nil)
	if err != nil {
		return nil, err
	}

	var stats []map[string]any
	if _, err := s.client.do(req, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// AssociateMetadata adds a record to a catalog.
func (s *CatalogsService) AssociateMetadata(ctx context.Context, catalogID, metadataID string) error {
	if err := checkUUID("catalog", catalogID); err != nil {
		return err
	}
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("catalogs/%s/resources/%s", catalogID, metadataID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateMetadata removes a record from a catalog.
func (s *CatalogsService) DissociateMetadata(ctx context.Context, catalogID, metadataID string) error {
	if err := checkUUID("catalog", catalogID); err != nil {
		return err
	}
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("catalogs/%s/resources/%s", catalogID, metadataID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
