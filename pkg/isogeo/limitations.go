package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// Limitation types and restrictions accepted by the API.
const (
	LimitationTypeLegal    = "legal"
	LimitationTypeSecurity = "security"
)

var validRestrictions = map[string]bool{
	"":                           true,
	"copyright":                  true,
	"intellectualPropertyRights": true,
	"license":                    true,
	"other":                      true,
	"patent":                     true,
	"patentPending":              true,
	"trademark":                  true,
}

// LimitationsService handles the legal and security restrictions of a record.
type LimitationsService service

// List returns the limitations of a record.
func (s *LimitationsService) List(ctx context.Context, metadataID string) ([]models.Limitation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/limitations", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var limitations []models.Limitation
	if _, err := s.client.do(req, &limitations); err != nil {
		return nil, err
	}
	return limitations, nil
}

// Get returns one limitation of a record.
func (s *LimitationsService) Get(ctx context.Context, metadataID, limitationID string) (*models.Limitation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("limitation", limitationID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/limitations/%s", metadataID, limitationID), nil, nil)
	if err != nil {
		return nil, err
	}

	var limitation models.Limitation
	if _, err := s.client.do(req, &limitation); err != nil {
		return nil, err
	}
	return &limitation, nil
}

// Create adds a limitation to a record. Directives only apply to legal
// limitations.
func (s *LimitationsService) Create(ctx context.Context, metadataID string, limitation *models.Limitation) (*models.Limitation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	switch limitation.Type {
	case LimitationTypeLegal, LimitationTypeSecurity:
	default:
		return nil, fmt.Errorf("limitation type must be legal or security, got %q", limitation.Type)
	}
	if !validRestrictions[limitation.Restriction] {
		return nil, fmt.Errorf("restriction %q is not accepted by the API", limitation.Restriction)
	}
	if limitation.Directive != nil && limitation.Type != LimitationTypeLegal {
		return nil, fmt.Errorf("only legal limitations accept a directive")
	}

	payload := struct {
		Description string            `json:"description,omitempty"`
		Directive   *models.Directive `json:"directive,omitempty"`
		Restriction string            `json:"restriction,omitempty"`
		Type        string            `json:"type"`
	}{limitation.Description, limitation.Directive, limitation.Restriction, limitation.Type}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/limitations", metadataID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Limitation
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies a limitation of a record.
func (s *LimitationsService) Update(ctx context.Context, metadataID string, limitation *models.Limitation) (*models.Limitation, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("limitation", limitation.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/limitations/%s", metadataID, limitation.ID), nil, limitation)
	if err != nil {
		return nil, err
	}

	var updated models.Limitation
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a limitation from a record.
func (s *LimitationsService) Delete(ctx context.Context, metadataID, limitationID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("limitation", limitationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/limitations/%s", metadataID, limitationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Conditions returns the license conditions of a record.
func (s *LimitationsService) Conditions(ctx context.Context, metadataID string) ([]models.Condition, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/conditions", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var conditions []models.Condition
	if _, err := s.client.do(req, &conditions); err != nil {
		return nil, err
	}
	return conditions, nil
}

// CreateCondition attaches a license condition to a record.
func (s *LimitationsService) CreateCondition(ctx context.Context, metadataID string, condition *models.Condition) (*models.Condition, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if condition.License != nil {
		if err := checkUUID("license", condition.License.ID); err != nil {
			return nil, err
		}
	}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/conditions", metadataID), nil, condition)
	if err != nil {
		return nil, err
	}

	var created models.Condition
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteCondition removes a license condition from a record.
func (s *LimitationsService) DeleteCondition(ctx context.Context, metadataID, conditionID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("condition", conditionID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/conditions/%s", metadataID, conditionID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
