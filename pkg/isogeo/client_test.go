package isogeo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Workgroup-style UUIDs, hex without hyphens like the API serves them.
const (
	testWorkgroupID = "32f7e95ec4e94ca3bc1afda960003882"
	testMetadataID  = "c4b7ad9732454beca1ab3ec1958ffa50"
	testCatalogID   = "fe3e8ef97b8446be92d3c315ccfd0fbf"
)

func setup(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.Client(), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return client
}

func TestRequestHeaders(t *testing.T) {
	var got *http.Request
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		_, _ = w.Write([]byte(`{"name":"api","version":"1.0"}`))
	}))

	if _, err := client.About.Version(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if accept := got.Header.Get("Accept"); accept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", accept)
	}
	if ua := got.Header.Get("User-Agent"); ua == "" {
		t.Error("expected a User-Agent header")
	}
	if lang := got.Header.Get("Accept-Language"); lang != "en" {
		t.Errorf("expected Accept-Language en, got %q", lang)
	}
	if lang := got.URL.Query().Get("_lang"); lang != "en" {
		t.Errorf("expected _lang=en query param, got %q", lang)
	}
}

func TestLanguageFallback(t *testing.T) {
	tests := []struct {
		asked string
		want  string
	}{
		{"fr", "fr"},
		{"fr-FR", "fr"},
		{"en-US", "en"},
		{"de", "en"},
		{"not-a-lang", "en"},
	}

	for _, tt := range tests {
		client, err := NewClient(nil, WithLanguage(tt.asked))
		if err != nil {
			t.Fatalf("creating client: %v", err)
		}
		if client.lang != tt.want {
			t.Errorf("asked %q: expected %q, got %q", tt.asked, tt.want, client.lang)
		}
	}
}

func TestAPIErrorParsing(t *testing.T) {
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"resourceNotFound","message":"Resource does not exist"}`))
	}))

	_, err := client.Metadata.Get(context.Background(), testMetadataID)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Code != "resourceNotFound" {
		t.Errorf("expected code resourceNotFound, got %q", apiErr.Code)
	}
	if apiErr.Message != "Resource does not exist" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}

	if !IsNotFound(err) {
		t.Error("expected IsNotFound to report true")
	}
}

func TestMetadataExists(t *testing.T) {
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	exists, err := client.Metadata.Exists(context.Background(), testMetadataID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected record to not exist")
	}
}

func TestUUIDValidation(t *testing.T) {
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an invalid UUID")
	}))

	if _, err := client.Metadata.Get(context.Background(), "not-a-uuid"); err == nil {
		t.Error("expected an error for a malformed record UUID")
	}
	if _, err := client.Catalogs.List(context.Background(), "also-bad"); err == nil {
		t.Error("expected an error for a malformed workgroup UUID")
	}
	if err := client.Keywords.Tag(context.Background(), testMetadataID, ""); err == nil {
		t.Error("expected an error for an empty keyword UUID")
	}
}

func TestIncludeQuery(t *testing.T) {
	var got string
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("_include")
		_, _ = w.Write([]byte(`{"_id":"` + testMetadataID + `","title":"t"}`))
	}))

	_, err := client.Metadata.Get(context.Background(), testMetadataID, "contacts", "events")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "contacts,events" {
		t.Errorf("expected _include=contacts,events, got %q", got)
	}
}

func TestNewBulkRequestValidation(t *testing.T) {
	if _, err := NewBulkRequest("replace", BulkTargetKeywords, []string{testMetadataID}); err == nil {
		t.Error("expected an error for an unknown bulk action")
	}
	if _, err := NewBulkRequest(BulkActionAdd, "licenses", []string{testMetadataID}); err == nil {
		t.Error("expected an error for an unknown bulk target")
	}
	if _, err := NewBulkRequest(BulkActionAdd, BulkTargetCatalogs, []string{"nope"}); err == nil {
		t.Error("expected an error for a malformed record UUID")
	}

	req, err := NewBulkRequest(BulkActionAdd, BulkTargetCatalogs, []string{testMetadataID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Query.IDs) != 1 || req.Query.IDs[0] != testMetadataID {
		t.Errorf("unexpected bulk query: %+v", req.Query)
	}
}
