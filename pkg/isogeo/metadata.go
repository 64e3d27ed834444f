package isogeo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// MetadataService handles the record ("resource") routes of the API.
type MetadataService service

// Get returns one record. Subresources listed in include are embedded.
func (s *MetadataService) Get(ctx context.Context, metadataID string, include ...string) (*models.Metadata, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s", metadataID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var md models.Metadata
	if _, err := s.client.do(req, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// Exists reports whether a record UUID resolves on the platform.
func (s *MetadataService) Exists(ctx context.Context, metadataID string) (bool, error) {
	_, err := s.Get(ctx, metadataID)
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create adds a record to a workgroup. Only the record type and the
// editable description fields are sent.
func (s *MetadataService) Create(ctx context.Context, workgroupID string, md *models.Metadata) (*models.Metadata, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if md.Type == "" {
		return nil, fmt.Errorf("a record requires a type (e.g. %q)", models.TypeVectorDataset)
	}

	payload := struct {
		Abstract string `json:"abstract,omitempty"`
		Format   string `json:"format,omitempty"`
		Language string `json:"language,omitempty"`
		Name     string `json:"name,omitempty"`
		Series   bool   `json:"series"`
		Title    string `json:"title"`
		Type     string `json:"type"`
	}{md.Abstract, md.Format, md.Language, md.Name, md.Series, md.Title, md.Type}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/resources", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Metadata
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update patches a record in place.
func (s *MetadataService) Update(ctx context.Context, md *models.Metadata) (*models.Metadata, error) {
	if err := checkUUID("metadata", md.ID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodPatch,
		fmt.Sprintf("resources/%s", md.ID), nil, md)
	if err != nil {
		return nil, err
	}

	var updated models.Metadata
	if _, err := s.client.do(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a record from the platform.
func (s *MetadataService) Delete(ctx context.Context, metadataID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s", metadataID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// DownloadXML returns the ISO 19139 export of a record.
func (s *MetadataService) DownloadXML(ctx context.Context, metadataID string) ([]byte, error) {
	if err := checkUUID("metadata", metadataID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("resources/%s.xml", metadataID), url.Values{}, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/xml")

	return s.client.doRaw(req)
}

// Bulk actions and targets.
const (
	BulkActionAdd    = "add"
	BulkActionDelete = "delete"
	BulkActionUpdate = "update"

	BulkTargetCatalogs = "catalogs"
	BulkTargetContacts = "contacts"
	BulkTargetKeywords = "keywords"
)

// BulkRequest tags, untags or retags many records in one shot.
type BulkRequest struct {
	Action string    `json:"action"`
	Target string    `json:"target"`
	Query  BulkQuery `json:"query"`
	Model  []any     `json:"model"`
}

// BulkQuery selects the records a bulk request applies to.
type BulkQuery struct {
	IDs []string `json:"ids"`
}

// BulkReport is the per-request outcome returned by the bulk endpoint.
type BulkReport map[string]any

// NewBulkRequest assembles one bulk operation over the given record UUIDs.
// The models slice holds the objects to associate or dissociate (catalogs,
// contacts or keywords, matching target).
func NewBulkRequest(action, target string, metadataIDs []string, objects ...any) (BulkRequest, error) {
	switch action {
	case BulkActionAdd, BulkActionDelete, BulkActionUpdate:
	default:
		return BulkRequest{}, fmt.Errorf("bulk action must be add, delete or update, got %q", action)
	}
	switch target {
	case BulkTargetCatalogs, BulkTargetContacts, BulkTargetKeywords:
	default:
		return BulkRequest{}, fmt.Errorf("bulk target %q is not supported", target)
	}
	for _, id := range metadataIDs {
		if err := checkUUID("metadata", id); err != nil {
			return BulkRequest{}, err
		}
	}
	return BulkRequest{
		Action: action,
		Target: target,
		Query:  BulkQuery{IDs: metadataIDs},
		Model:  objects,
	}, nil
}

// Bulk sends prepared bulk requests to the records endpoint.
func (s *MetadataService) Bulk(ctx context.Context, requests []BulkRequest) ([]BulkReport, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("no bulk request to send")
	}

	req, err := s.client.newRequest(ctx, http.MethodPost, "resources", nil, requests)
	if err != nil {
		return nil, err
	}

	var reports []BulkReport
	if _, err := s.client.do(req, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
