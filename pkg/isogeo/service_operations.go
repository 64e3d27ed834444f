package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// ServiceOperationsService handles the operations of geographic web
// service records.
type ServiceOperationsService service

// List returns the operations of a service record.
func (s *ServiceOperationsService) List(ctx context.Context, metadataID string) ([]models.ServiceOperation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/operations", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var ops []models.ServiceOperation
	if _, err := s.client.do(req, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

// Get returns one operation of a service record.
func (s *ServiceOperationsService) Get(ctx context.Context, metadataID, operationID string) (*models.ServiceOperation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("operation", operationID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/operations/%s", metadataID, operationID), nil, nil)
	if err != nil {
		return nil, err
	}

	var op models.ServiceOperation
	if _, err := s.client.do(req, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// Create adds an operation to a service record.
func (s *ServiceOperationsService) Create(ctx context.Context, metadataID string, op *models.ServiceOperation) (*models.ServiceOperation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if op.Name == "" {
		return nil, fmt.Errorf("a service operation requires a name")
	}
	switch op.Verb {
	case "", "GET", "POST":
	default:
		return nil, fmt.Errorf("operation verb must be GET or POST, got %q", op.Verb)
	}

	payload := struct {
		MimeTypesIn  []string `json:"mimeTypesIn,omitempty"`
		MimeTypesOut []string `json:"mimeTypesOut,omitempty"`
		Name         string   `json:"name"`
		URL          string   `json:"url,omitempty"`
		Verb         string   `json:"verb,omitempty"`
	}{op.MimeTypesIn, op.MimeTypesOut, op.Name, op.URL, op.Verb}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/operations", metadataID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.ServiceOperation
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes an operation from a service record.
func (s *ServiceOperationsService) Delete(ctx context.Context, metadataID, operationID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("operation", operationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/operations/%s", metadataID, operationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
