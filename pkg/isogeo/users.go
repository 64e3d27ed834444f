package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// UsersService handles the user administration routes. Most of them are
// reserved to staff applications.
type UsersService service

// List returns the users of the platform.
func (s *UsersService) List(ctx context.Context, include ...string) ([]models.User, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, "users", includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if _, err := s.client.do(req, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns one user.
func (s *UsersService) Get(ctx context.Context, userID string, include ...string) (*models.User, error) {
	if err := checkUUID("user", userID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("users/%s", userID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var user models.User
	if _, err := s.client.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a new user account.
func (s *UsersService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Contact == nil || user.Contact.Email == "" {
		return nil, fmt.Errorf("a user requires a contact with an email")
	}

	payload := struct {
		Contact   *models.Contact `json:"contact"`
		Language  string          `json:"language,omitempty"`
		Mailchimp bool            `json:"mailchimp,omitempty"`
		Staff     bool            `json:"staff,omitempty"`
		Timezone  string          `json:"timezone,omitempty"`
	}{user.Contact, user.Language, user.Mailchimp, user.Staff, user.Timezone}

	req, err := s.client.newRequest(ctx, http.MethodPost, "users", nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.User
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies a user account.
func (s *UsersService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if err := checkUUID("user", user.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("users/%s", user.ID), nil, user)
	if err != nil {
		return nil, err
	}

	var updated models.User
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user account.
func (s *UsersService) Delete(ctx context.Context, userID string) error {
	if err := checkUUID("user", userID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("users/%s", userID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Memberships returns the workgroups of a user with their roles.
func (s *UsersService) Memberships(ctx context.Context, userID string) ([]models.Membership, error) {
	if err := checkUUID("user", userID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("users/%s/memberships", userID), nil, nil)
	if err != nil {
		return nil, err
	}

	var memberships []models.Membership
	if _, err := s.client.do(req, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}
