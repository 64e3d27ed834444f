package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// Event kinds accepted by the API.
const (
	EventKindCreation    = "creation"
	EventKindUpdate      = "update"
	EventKindPublication = "publication"
)

var validEventKinds = map[string]bool{
	EventKindCreation:    true,
	EventKindUpdate:      true,
	EventKindPublication: true,
}

// EventsService handles the lifecycle events of a record.
type EventsService service

// List returns the events of a record.
func (s *EventsService) List(ctx context.Context, metadataID string) ([]models.Event, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/events", metadataID), nil, nil)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if _, err := s.client.do(req, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get returns one event of a record.
func (s *EventsService) Get(ctx context.Context, metadataID, eventID string) (*models.Event, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("event", eventID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s/events/%s", metadataID, eventID), nil, nil)
	if err != nil {
		return nil, err
	}

	var event models.Event
	if _, err := s.client.do(req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create adds an event to a record. Only update events carry a description.
func (s *EventsService) Create(ctx context.Context, metadataID string, event *models.Event) (*models.Event, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if !validEventKinds[event.Kind] {
		return nil, fmt.Errorf("event kind must be creation, update or publication, got %q", event.Kind)
	}
	if event.Date == "" {
		return nil, fmt.Errorf("an event requires a date (YYYY-MM-DD)")
	}
	if event.Kind != EventKindUpdate && event.Description != "" {
		return nil, fmt.Errorf("only update events accept a description")
	}

	payload := struct {
		Date        string `json:"date"`
		Description string `json:"description,omitempty"`
		Kind        string `json:"kind"`
	}{event.Date, event.Description, event.Kind}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/events", metadataID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Event
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update modifies an event of a record.
func (s *EventsService) Update(ctx context.Context, metadataID string, event *models.Event) (*models.Event, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}
	if err := checkUUID("event", event.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPut,
		fmt.Sprintf("resources/%s/events/%s", metadataID, event.ID), nil, event)
	if err != nil {
		return nil, err
	}

	var updated models.Event
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an event from a record.
func (s *EventsService) Delete(ctx context.Context, metadataID, eventID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("event", eventID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/events/%s", metadataID, eventID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
