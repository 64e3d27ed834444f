package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// ApplicationsService handles the application routes of the API.
type ApplicationsService service

// List returns the applications visible to the authenticated identity.
// With a workgroup UUID, only the applications granted to that workgroup
// are returned.
func (s *ApplicationsService) List(ctx context.Context, workgroupID string, include ...string) ([]models.Application, error) {
	path := "applications"
	if workgroupID != "" {
		if err := checkUUID("workgroup", workgroupID); err != nil {
			return nil, err
		}
		path = fmt.Sprintf("groups/%s/applications", workgroupID)
	}

	req, err := s.client.newRequest(ctx, http.MethodGet, path, includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if _, err := s.client.do(req, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Get returns one application.
func (s *ApplicationsService) Get(ctx context.Context, applicationID string, include ...string) (*models.Application, error) {
	if err := checkUUID("application", applicationID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("applications/%s", applicationID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var app models.Application
	if _, err := s.client.do(req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Create registers a new application.
func (s *ApplicationsService) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.Name == "" {
		return nil, fmt.Errorf("an application requires a name")
	}

	payload := struct {
		CanHaveManyGroups bool     `json:"canHaveManyGroups,omitempty"`
		Name              string   `json:"name"`
		RedirectURIs      []string `json:"redirectUris,omitempty"`
		Staff             bool     `json:"staff,omitempty"`
		Type              string   `json:"type,omitempty"`
		URL               string   `json:"url,omitempty"`
	}{app.CanHaveManyGroups, app.Name, app.RedirectURIs, app.Staff, app.Type, app.URL}

	req, err := s.client.newRequest(ctx, http.MethodPost, "applications", nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Application
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an application.
func (s *ApplicationsService) Update(ctx context.Context, app *models.Application) (*models.Application, error) {
	if err := checkUUID("application", app.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("applications/%s", app.ID), nil, app)
	if err != nil {
		return nil, err
	}

	var updated models.Application
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete unregisters an application.
func (s *ApplicationsService) Delete(ctx context.Context, applicationID string) error {
	if err := checkUUID("application", applicationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("applications/%s", applicationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Workgroups returns the workgroups an application is granted to.
func (s *ApplicationsService) Workgroups(ctx context.Context, applicationID string) ([]models.Workgroup, error) {
	if err := checkUUID("application", applicationID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("applications/%s/groups", applicationID), nil, nil)
	if err != nil {
		return nil, err
	}

	var groups []models.Workgroup
	if _, err := s.client.do(req, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// AssociateGroup grants a workgroup to an application.
func (s *ApplicationsService) AssociateGroup(ctx context.Context, applicationID, workgroupID string) error {
	if err := checkUUID("application", applicationID); err != nil {
		return err
	}
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("applications/%s/groups/%s", applicationID, workgroupID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateGroup revokes a workgroup from an application.
func (s *ApplicationsService) DissociateGroup(ctx context.Context, applicationID, workgroupID string) error {
	if err := checkUUID("application", applicationID); err != nil {
		return err
	}
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("applications/%s/groups/%s", applicationID, workgroupID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
