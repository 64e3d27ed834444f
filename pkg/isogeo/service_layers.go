package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// ServiceLayersService handles the layers of geographic web service records.
type ServiceLayersService service

// List returns the layers of a service record.
func (s *ServiceLayersService) List(ctx context.Context, metadataID string) ([]models.ServiceLayer, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/layers", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var layers []models.ServiceLayer
	if _, err := s.client.do(req, &layers); err != nil {
		return nil, err
	}
	return layers, nil
}

// Get returns one layer of a service record.
func (s *ServiceLayersService) Get(ctx context.Context, metadataID, layerID string) (*models.ServiceLayer, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("layer", layerID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/layers/%s", metadataID, layerID), nil, nil)
	if err != nil {
		return nil, err
	}

	var layer models.ServiceLayer
	if _, err := s.client.do(req, &layer); err != nil {
		return nil, err
	}
	return &layer, nil
}

// Create adds a layer to a service record.
func (s *ServiceLayersService) Create(ctx context.Context, metadataID string, layer *models.ServiceLayer) (*models.ServiceLayer, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if layer.Name == "" {
		return nil, fmt.Errorf("a service layer requires a name")
	}

	payload := struct {
		Name   string              `json:"name"`
		Titles []models.LayerTitle `json:"titles,omitempty"`
	}{layer.Name, layer.Titles}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/layers", metadataID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.ServiceLayer
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies a layer of a service record.
func (s *ServiceLayersService) Update(ctx context.Context, metadataID string, layer *models.ServiceLayer) (*models.ServiceLayer, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("layer", layer.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/layers/%s", metadataID, layer.ID), nil, layer)
	if err != nil {
		return nil, err
	}

	var updated models.ServiceLayer
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a layer from a service record.
func (s *ServiceLayersService) Delete(ctx context.Context, metadataID, layerID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("layer", layerID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/layers/%s", metadataID, layerID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// AssociateDataset pairs a service layer with the record describing the
// underlying dataset.
func (s *ServiceLayersService) AssociateDataset(ctx context.Context, serviceID, layerID, datasetID string) error {
	if err := checkUUID("metadata", serviceID); err != nil {
		return err
	}
	if err := checkUUID("layer", layerID); err != nil {
		return err
	}
	if err := checkUUID("metadata", datasetID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/layers/%s/dataset/%s", serviceID, layerID, datasetID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DissociateDataset unpairs a service layer from its dataset record.
func (s *ServiceLayersService) DissociateDataset(ctx context.Context, serviceID, layerID, datasetID string) error {
	if err := checkUUID("metadata", serviceID); err != nil {
		return err
	}
	if err := checkUUID("layer", layerID); err != nil {
		return err
	}
	if err := checkUUID("metadata", datasetID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/layers/%s/dataset/%s", serviceID, layerID, datasetID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
