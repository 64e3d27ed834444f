package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// SharesService handles the share routes of the API.
type SharesService service

// List returns the shares visible to the authenticated identity. With a
// workgroup UUID, only the shares of that workgroup are returned. The
// name cache is refreshed from the response.
func (s *SharesService) List(ctx context.Context, workgroupID string, include ...string) ([]models.Share, error) {
	path := "shares"
	if workgroupID != "" {
		if err := checkUUID("workgroup", workgroupID); err != nil {
			return nil, err
		}
		path = fmt.Sprintf("groups/%s/shares", workgroupID)
	}

	req, err := s.client.newRequest(ctx, http.MethodGet, path, includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var shares []models.Share
	if _, err := s.client.do(req, &shares); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(shares))
	for _, share := range shares {
		entries[share.Name] = share.ID
	}
	s.client.cacheReplace(cacheShares, entries)

	return shares, nil
}

// Get returns one share.
func (s *SharesService) Get(ctx context.Context, shareID string, include ...string) (*models.Share, error) {
	if err := checkUUID("share", shareID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("shares/%s", shareID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var share models.Share
	if _, err := s.client.do(req, &share); err != nil {
		return nil, err
	}
	return &share, nil
}

// Create opens a new share for a workgroup. A share whose name already
// exists is rejected with ErrAlreadyExists.
func (s *SharesService) Create(ctx context.Context, workgroupID string, share *models.Share) (*models.Share, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if share.Name == "" {
		return nil, fmt.Errorf("a share requires a name")
	}

	if s.client.cacheEmpty(cacheShares) {
		if _, err := s.List(ctx, workgroupID); err != nil {
			return nil, err
		}
	}
	if _, exists := s.client.cacheLookup(cacheShares, share.Name); exists {
		return nil, fmt.Errorf("share %q: %w", share.Name, ErrAlreadyExists)
	}

	payload := struct {
		Name string `json:"name"`
		Type string `json:"type,omitempty"`
	}{share.Name, share.Type}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/shares", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Share
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	s.client.cacheStore(cacheShares, created.Name, created.ID)
	return &created, nil
}

// Update modifies a share.
func (s *SharesService) Update(ctx context.Context, share *models.Share) (*models.Share, error) {
	if err := checkUUID("share", share.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("shares/%s", share.ID), nil, share)
	if err != nil {
		return nil, err
	}

	var updated models.Share
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete closes a share.
func (s *SharesService) Delete(ctx context.Context, shareID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("shares/%s", shareID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// RefreshToken regenerates the URL token of a share, invalidating the
// previous open link.
func (s *SharesService) RefreshToken(ctx context.Context, shareID string) (*models.Share, error) {
	if err := checkUUID("share", shareID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("shares/%s/refresh-token", shareID), nil, nil)
	if err != nil {
		return nil, err
	}

	var refreshed models.Share
	if _, err := s.client.do(req, &refreshed); err != nil {
		return nil, err
	}
	return &refreshed, nil
}

// AssociateApplication allows an application to consume a share.
func (s *SharesService) AssociateApplication(ctx context.Context, shareID, applicationID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}
	if err := checkUUID("application", applicationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("shares/%s/applications/%s", shareID, applicationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateApplication revokes an application from a share.
func (s *SharesService) DissociateApplication(ctx context.Context, shareID, applicationID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}
	if err := checkUUID("application", applicationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("shares/%s/applications/%s", shareID, applicationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// AssociateCatalog feeds a catalog into a share.
func (s *SharesService) AssociateCatalog(ctx context.Context, shareID, catalogID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}
	if err := checkUUID("catalog", catalogID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("shares/%s/catalogs/%s", shareID, catalogID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateCatalog removes a catalog from a share.
func (s *SharesService) DissociateCatalog(ctx context.Context, shareID, catalogID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}
	if err := checkUUID("catalog", catalogID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("shares/%s/catalogs/%s", shareID, catalogID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// AssociateGroup grants a workgroup access to a share.
func (s *SharesService) AssociateGroup(ctx context.Context, shareID, workgroupID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("shares/%s/groups/%s", shareID, workgroupID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateGroup revokes a workgroup from a share.
func (s *SharesService) DissociateGroup(ctx context.Context, shareID, workgroupID string) error {
	if err := checkUUID("share", shareID); err != nil {
		return err
	}
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("shares/%s/groups/%s", shareID, workgroupID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
