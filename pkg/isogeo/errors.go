package isogeo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// ErrAlreadyExists is returned by Create methods when an entity with the
// same name already exists in the workgroup.
var ErrAlreadyExists = errors.New("an entity with the same name already exists")

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	// Code and Message come from the vendor error payload when present.
	Code    string
	Message string
	// URL is the request path that failed.
	URL string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d on %s: %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("api error %d on %s", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// checkResponse maps non-2xx responses to *APIError.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		URL:        resp.Request.URL.Path,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(body) > 0 {
		var payload struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Message
			if apiErr.Message == "" {
				apiErr.Message = payload.Error
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = string(body)
		}
	}

	return apiErr
}

// checkUUID validates an identifier argument. The API uses UUIDs, usually
// hex-encoded without hyphens.
func checkUUID(label, id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%s ID is not a valid UUID: %q", label, id)
	}
	return nil
}
