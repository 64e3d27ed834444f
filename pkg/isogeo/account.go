package isogeo

import (
	"context"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// AccountService handles the profile of the authenticated user.
type AccountService service

// Get returns the authenticated user profile.
func (s *AccountService) Get(ctx context.Context, include ...string) (*models.User, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "account", includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if _, err := s.client.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update modifies the authenticated user profile.
func (s *AccountService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	req, err := s.client.newRequest(ctx, http.MethodPut, "account", nil, user)
	if err != nil {
		return nil, err
	}

	var updated models.User
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Memberships returns the workgroups of the authenticated user with roles.
func (s *AccountService) Memberships(ctx context.Context) ([]models.Membership, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "account/memberships", nil, nil)
	if err != nil {
		return nil, err
	}

	var memberships []models.Membership
	if _, err := s.client.do(req, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}
