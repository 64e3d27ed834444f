package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// ContactsService handles the contact routes of the API.
type ContactsService service

// List returns the contacts of a workgroup and refreshes the name cache.
func (s *ContactsService) List(ctx context.Context, workgroupID string, include ...string) ([]models.Contact, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("groups/%s/contacts", workgroupID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if _, err := s.client.do(req, &contacts); err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(contacts))
	for _, contact := range contacts {
		entries[contact.Name] = contact.ID
	}
	s.client.cacheReplace(cacheContacts, entries)

	return contacts, nil
}

// Get returns one contact.
func (s *ContactsService) Get(ctx context.Context, contactID string, include ...string) (*models.Contact, error) {
	if err := checkUUID("contact", contactID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("contacts/%s", contactID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var contact models.Contact
	if _, err := s.client.do(req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// Create adds a contact to a workgroup address book. A contact whose name
// already exists in the workgroup is rejected with ErrAlreadyExists.
func (s *ContactsService) Create(ctx context.Context, workgroupID string, contact *models.Contact) (*models.Contact, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}

	if s.client.cacheEmpty(cacheContacts) {
		if _, err := s.List(ctx, workgroupID); err != nil {
			return nil, err
		}
	}
	if _, exists := s.client.cacheLookup(cacheContacts, contact.Name); exists {
		return nil, fmt.Errorf("contact %q: %w", contact.Name, ErrAlreadyExists)
	}

	payload := struct {
		AddressLine1 string `json:"addressLine1,omitempty"`
		AddressLine2 string `json:"addressLine2,omitempty"`
		AddressLine3 string `json:"addressLine3,omitempty"`
		City         string `json:"city,omitempty"`
		CountryCode  string `json:"countryCode,omitempty"`
		Email        string `json:"email,omitempty"`
		Fax          string `json:"fax,omitempty"`
		Name         string `json:"name"`
		Organization string `json:"organization,omitempty"`
		Phone        string `json:"phone,omitempty"`
		ZipCode      string `json:"zipCode,omitempty"`
	}{
		contact.AddressLine1, contact.AddressLine2, contact.AddressLine3,
		contact.City, contact.CountryCode, contact.Email, contact.Fax,
		contact.Name, contact.Organization, contact.Phone, contact.ZipCode,
	}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/contacts", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Contact
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}

	s.client.cacheStore(cacheContacts, created.Name, created.ID)
	return &created, nil
}

// Update modifies a workgroup contact.
func (s *ContactsService) Update(ctx context.Context, workgroupID string, contact *models.Contact) (*models.Contact, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if err := checkUUID("contact", contact.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("groups/%s/contacts/%s", workgroupID, contact.ID), nil, contact)
	if err != nil {
		return nil, err
	}

	var updated models.Contact
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a contact from a workgroup address book.
func (s *ContactsService) Delete(ctx context.Context, workgroupID, contactID string) error {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return err
	}
	if err := checkUUID("contact", contactID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("groups/%s/contacts/%s", workgroupID, contactID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// AssociateMetadata attaches a contact to a record with a role.
func (s *ContactsService) AssociateMetadata(ctx context.Context, metadataID, contactID, role string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("contact", contactID); err != nil {
		return err
	}

	payload := struct {
		Role string `json:"role"`
	}{role}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/contacts/%s", metadataID, contactID), nil, payload)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateMetadata detaches a contact from a record.
func (s *ContactsService) DissociateMetadata(ctx context.Context, metadataID, contactID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("contact", contactID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/contacts/%s", metadataID, contactID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
