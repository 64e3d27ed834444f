package isogeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/geoapis/go-isogeo/pkg/models"
)

const testThesaurusID = "1616597fbc4e4f678aefe267bfb6d87b"

func fakeKeywordServer(t *testing.T, total int) http.Handler {
	t.Helper()

	corpus := make([]models.Keyword, total)
	for i := range corpus {
		corpus[i] = models.Keyword{
			ID:   fmt.Sprintf("%032x", i),
			Text: fmt.Sprintf("keyword %d", i),
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/thesauri/" + testThesaurusID + "/keywords/search"
		if r.URL.Path != want {
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
		var results []models.Keyword
		if offset < total {
			results = corpus[offset:end]
		}

		_ = json.NewEncoder(w).Encode(models.KeywordSearch{
			Limit:   limit,
			Offset:  offset,
			Results: results,
			Total:   total,
		})
	})
}

func TestKeywordSearchPage(t *testing.T) {
	client := setup(t, fakeKeywordServer(t, 30))

	search, err := client.Keywords.Search(context.Background(), testThesaurusID, KeywordSearchOptions{PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != 10 || search.Total != 30 {
		t.Errorf("expected 10 of 30 keywords, got %d of %d", len(search.Results), search.Total)
	}
}

func TestKeywordSearchWholeResultsSmall(t *testing.T) {
	// totals under one page are fetched with a single full-page request
	client := setup(t, fakeKeywordServer(t, 30))

	search, err := client.Keywords.Search(context.Background(), testThesaurusID, KeywordSearchOptions{WholeResults: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != 30 {
		t.Errorf("expected 30 keywords, got %d", len(search.Results))
	}
}

func TestKeywordSearchWholeResultsFanOut(t *testing.T) {
	const total = 250
	client := setup(t, fakeKeywordServer(t, total))

	search, err := client.Keywords.Search(context.Background(), testThesaurusID, KeywordSearchOptions{WholeResults: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != total || search.Total != total {
		t.Fatalf("expected %d keywords, got %d of %d", total, len(search.Results), search.Total)
	}

	// every keyword shows up exactly once
	seen := make(map[string]bool, total)
	for _, kw := range search.Results {
		if seen[kw.ID] {
			t.Errorf("keyword %s returned twice", kw.ID)
		}
		seen[kw.ID] = true
	}
}

func TestKeywordSearchWholeResultsConcurrent(t *testing.T) {
	const total = 500
	var inFlight, maxInFlight atomic.Int32
	inner := fakeKeywordServer(t, total)
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := inFlight.Add(1)
		for {
			peak := maxInFlight.Load()
			if cur <= peak || maxInFlight.CompareAndSwap(peak, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inner.ServeHTTP(w, r)
		inFlight.Add(-1)
	}))

	search, err := client.Keywords.Search(context.Background(), testThesaurusID, KeywordSearchOptions{WholeResults: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != total {
		t.Fatalf("expected %d keywords, got %d", total, len(search.Results))
	}
	// pages are fetched on a worker pool, not one after the other
	if maxInFlight.Load() < 2 {
		t.Error("expected page requests to overlap")
	}
}

func TestKeywordSearchValidation(t *testing.T) {
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for invalid options")
	}))

	_, err := client.Keywords.Search(context.Background(), testThesaurusID, KeywordSearchOptions{OrderBy: "length"})
	if err == nil {
		t.Error("expected an error for an unknown sort field")
	}
	_, err = client.Keywords.Search(context.Background(), "nope", KeywordSearchOptions{})
	if err == nil {
		t.Error("expected an error for a malformed thesaurus UUID")
	}
}
