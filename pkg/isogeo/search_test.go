package isogeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// fakeSearchServer serves a paginated corpus of records the way the search
// endpoint does, honoring _limit and _offset.
func fakeSearchServer(t *testing.T, total int) http.Handler {
	t.Helper()

	corpus := make([]models.Metadata, total)
	for i := range corpus {
		corpus[i] = models.Metadata{
			ID:    fmt.Sprintf("%032x", i),
			Title: fmt.Sprintf("record %d", i),
			Type:  models.TypeVectorDataset,
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resources/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("_limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("_offset"))

		end := offset + limit
		if end > total {
			end = total
		}
		var results []models.Metadata
		if offset < total {
			results = corpus[offset:end]
		}

		resp := models.MetadataSearch{
			Limit:   limit,
			Offset:  offset,
			Results: results,
			Tags: map[string]string{
				"type:vector-dataset":            "Vector dataset",
				"page:" + strconv.Itoa(offset):   "",
				"owner:32f7e95ec4e94ca3bc1afda9": "Test group",
			},
			Total: total,
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	})
}

func TestSearchSinglePage(t *testing.T) {
	client := setup(t, fakeSearchServer(t, 42))

	search, err := client.Search.Search(context.Background(), SearchOptions{PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != 10 {
		t.Errorf("expected 10 results, got %d", len(search.Results))
	}
	if search.Total != 42 {
		t.Errorf("expected total 42, got %d", search.Total)
	}
}

func TestSearchWholeResultsSmall(t *testing.T) {
	// totals under one page are fetched with a single full-page request
	client := setup(t, fakeSearchServer(t, 7))

	search, err := client.Search.Search(context.Background(), SearchOptions{WholeResults: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != 7 {
		t.Errorf("expected 7 results, got %d", len(search.Results))
	}
}

func TestSearchWholeResultsFanOut(t *testing.T) {
	const total = 250
	client := setup(t, fakeSearchServer(t, total))

	search, err := client.Search.Search(context.Background(), SearchOptions{WholeResults: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(search.Results) != total {
		t.Fatalf("expected %d results, got %d", total, len(search.Results))
	}
	if search.Total != total {
		t.Errorf("expected total %d, got %d", total, search.Total)
	}

	// every record shows up exactly once
	seen := make(map[string]bool, total)
	for _, md := range search.Results {
		if seen[md.ID] {
			t.Errorf("record %s returned twice", md.ID)
		}
		seen[md.ID] = true
	}

	// tags from all pages are unioned
	for _, offset := range []int{0, 100, 200} {
		if _, ok := search.Tags["page:"+strconv.Itoa(offset)]; !ok {
			t.Errorf("missing tag from page at offset %d", offset)
		}
	}
	if search.Tags["type:vector-dataset"] != "Vector dataset" {
		t.Error("missing shared tag")
	}
}

func TestSearchWholeResultsExpectedTotal(t *testing.T) {
	var requests atomic.Int32
	inner := fakeSearchServer(t, 150)
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		inner.ServeHTTP(w, r)
	}))

	search, err := client.Search.Search(context.Background(), SearchOptions{
		WholeResults:  true,
		ExpectedTotal: 150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != 150 {
		t.Errorf("expected 150 results, got %d", len(search.Results))
	}
	// the probe request is skipped when the total is known upfront
	if got := requests.Load(); got != 2 {
		t.Errorf("expected 2 page requests, got %d", got)
	}
}

func TestSearchWholeResultsAbortsOnError(t *testing.T) {
	inner := fakeSearchServer(t, 300)
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("_offset") == "200" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
			return
		}
		inner.ServeHTTP(w, r)
	}))

	_, err := client.Search.Search(context.Background(), SearchOptions{WholeResults: true})
	if err == nil {
		t.Fatal("expected the page error to abort the aggregation")
	}
}

func TestSearchOptionsValidation(t *testing.T) {
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for invalid options")
	}))

	cases := []SearchOptions{
		{OrderBy: "popularity"},
		{OrderDir: "sideways"},
		{GeoRelation: "near"},
		{BBox: []float64{1, 2, 3}},
		{GeoRelation: "within"}, // georel without a geographic filter
		{PageSize: 101},
		{Group: "not-a-uuid"},
	}
	for i, opts := range cases {
		if _, err := client.Search.Search(context.Background(), opts); err == nil {
			t.Errorf("case %d: expected a validation error", i)
		}
	}
}

func TestSearchGroupPath(t *testing.T) {
	var gotPath string
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"total":0,"results":[]}`))
	}))

	_, err := client.Search.Search(context.Background(), SearchOptions{Group: testWorkgroupID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "/groups/" + testWorkgroupID + "/resources/search"
	if gotPath != want {
		t.Errorf("expected path %s, got %s", want, gotPath)
	}
}
