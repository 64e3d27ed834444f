package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// WorkgroupsService handles the workgroup routes of the API.
type WorkgroupsService service

// List returns the workgroups visible to the authenticated identity.
func (s *WorkgroupsService) List(ctx context.Context, include ...string) ([]models.Workgroup, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "groups", includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var groups []models.Workgroup
	if _, err := s.client.do(req, &groups); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(groups))
	for _, group := range groups {
		if group.Contact != nil {
			entries[group.Contact.Name] = group.ID
		}
	}
	s.client.cacheReplace(cacheWorkgroups, entries)

	return groups, nil
}

// Get returns one workgroup.
func (s *WorkgroupsService) Get(ctx context.Context, workgroupID string, include ...string) (*models.Workgroup, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s", workgroupID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var group models.Workgroup
	if _, err := s.client.do(req, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// Create registers a new workgroup. The workgroup contact carries the name.
func (s *WorkgroupsService) Create(ctx context.Context, workgroup *models.Workgroup) (*models.Workgroup, error) {
	if workgroup.Contact == nil || workgroup.Contact.Name == "" {
		return nil, fmt.Errorf("a workgroup requires a contact with a name")
	}

	if !s.client.cacheEmpty(cacheWorkgroups) {
		if _, exists := s.client.cacheLookup(cacheWorkgroups, workgroup.Contact.Name); exists {
			return nil, fmt.Errorf("workgroup %q: %w", workgroup.Contact.Name, ErrAlreadyExists)
		}
	}

	payload := struct {
		Contact        *models.Contact `json:"contact"`
		KeywordsCasing string          `json:"keywordsCasing,omitempty"`
		Language       string          `json:"metadataLanguage,omitempty"`
	}{workgroup.Contact, workgroup.KeywordsCasing, workgroup.MetadataLanguage}

	req, err := s.client.newRequest(ctx, http.MethodPost, "groups", nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Workgroup
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	if created.Contact != nil {
		s.client.cacheStore(cacheWorkgroups, created.Contact.Name, created.ID)
	}
	return &created, nil
}

// Update modifies a workgroup.
func (s *WorkgroupsService) Update(ctx context.Context, workgroup *models.Workgroup) (*models.Workgroup, error) {
	if err := checkUUID("workgroup", workgroup.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s", workgroup.ID), nil, workgroup)
	if err != nil {
		return nil, err
	}

	var updated models.Workgroup
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a workgroup.
func (s *WorkgroupsService) Delete(ctx context.Context, workgroupID string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s", workgroupID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Statistics returns the content summary of a workgroup.
func (s *WorkgroupsService) Statistics(ctx context.Context, workgroupID string) (*models.WorkgroupStatistics, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/statistics", workgroupID), nil, nil)
	if err != nil {
		return nil, err
	}

	var stats models.WorkgroupStatistics
	if _, err := s.client.do(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// StatisticsByTag breaks the workgroup content down by one facet.
func (s *WorkgroupsService) StatisticsByTag(ctx context.Context, workgroupID, tag string) ([]map[string]any, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if !statisticsTags[tag] {
		return nil, fmt.Errorf("statistics facet %q is not accepted by the API", tag)
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/statistics/tag/%s", workgroupID, tag), nil, nil)
	if err != nil {
		return nil, err
	}

	var stats []map[string]any
	if _, err := s.client.do(req, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Limits returns the plan limits of a workgroup.
func (s *WorkgroupsService) Limits(ctx context.Context, workgroupID string) (map[string]any, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/limits", workgroupID), nil, nil)
	if err != nil {
		return nil, err
	}

	var limits map[string]any
	if _, err := s.client.do(req, &limits); err != nil {
		return nil, err
	}
	return limits, nil
}

// Memberships returns the users of a workgroup with their roles.
func (s *WorkgroupsService) Memberships(ctx context.Context, workgroupID string) ([]models.Membership, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/memberships", workgroupID), nil, nil)
	if err != nil {
		return nil, err
	}

	var memberships []models.Membership
	if _, err := s.client.do(req, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// Invitations returns the pending invitations of a workgroup.
func (s *WorkgroupsService) Invitations(ctx context.Context, workgroupID string) ([]models.WorkgroupInvitation, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/invitations", workgroupID), nil, nil)
	if err != nil {
		return nil, err
	}

	var invitations []models.WorkgroupInvitation
	if _, err := s.client.do(req, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}
