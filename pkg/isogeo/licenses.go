package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// LicensesService handles the license routes of the API.
type LicensesService service

// List returns the licenses available to a workgroup, both the platform
// defaults and the workgroup's own. The name cache is refreshed.
func (s *LicensesService) List(ctx context.Context, workgroupID string, include ...string) ([]models.License, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/licenses", workgroupID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var licenses []models.License
	if _, err := s.client.do(req, &licenses); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(licenses))
	for _, lic := range licenses {
		entries[lic.Name] = lic.ID
	}
	s.client.cacheReplace(cacheLicenses, entries)

	return licenses, nil
}

// Get returns one license.
func (s *LicensesService) Get(ctx context.Context, licenseID string) (*models.License, error) {
	if err := checkUUID("license", licenseID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("licenses/%s", licenseID), nil, nil)
	if err != nil {
		return nil, err
	}

	var license models.License
	if _, err := s.client.do(req, &license); err != nil {
		return nil, err
	}
	return &license, nil
}

// Create adds a license to a workgroup. A license whose name already exists
// is rejected with ErrAlreadyExists.
func (s *LicensesService) Create(ctx context.Context, workgroupID string, license *models.License) (*models.License, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if license.Name == "" {
		return nil, fmt.Errorf("a license requires a name")
	}

	if s.client.cacheEmpty(cacheLicenses) {
		if _, err := s.List(ctx, workgroupID); err != nil {
			return nil, err
		}
	}
	if _, exists := s.client.cacheLookup(cacheLicenses, license.Name); exists {
		return nil, fmt.Errorf("license %q: %w", license.Name, ErrAlreadyExists)
	}

	payload := struct {
		Content string `json:"content,omitempty"`
		Link    string `json:"link,omitempty"`
		Name    string `json:"name"`
	}{license.Content, license.Link, license.Name}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/licenses", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.License
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	s.client.cacheStore(cacheLicenses, created.Name, created.ID)
	return &created, nil
}

// Update modifies a workgroup license.
func (s *LicensesService) Update(ctx context.Context, workgroupID string, license *models.License) (*models.License, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("license", license.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s/licenses/%s", workgroupID, license.ID), nil, license)
	if err != nil {
		return nil, err
	}

	var updated models.License
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a license from a workgroup.
func (s *LicensesService) Delete(ctx context.Context, workgroupID, licenseID string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}
	if err := checkUUID("license", licenseID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s/licenses/%s", workgroupID, licenseID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
