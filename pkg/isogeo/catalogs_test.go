package isogeo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/geoapis/go-isogeo/pkg/models"
)

func fakeCatalogsServer(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /groups/"+testWorkgroupID+"/catalogs", func(w http.ResponseWriter, r *http.Request) {
		catalogs := []models.Catalog{
			{ID: testCatalogID, Name: "Open data", Scan: true},
			{ID: "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6", Name: "Internal"},
		}
		_ = json.NewEncoder(w).Encode(catalogs)
	})
	mux.HandleFunc("POST /groups/"+testWorkgroupID+"/catalogs", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Name string `json:"name"`
			Scan bool   `json:"$scan"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decoding creation payload: %v", err)
		}
		created := models.Catalog{ID: "0123456789abcdef0123456789abcdef", Name: payload.Name, Scan: payload.Scan}
		_ = json.NewEncoder(w).Encode(created)
	})
	return mux
}

func TestCatalogsListRefreshesCache(t *testing.T) {
	client := setup(t, fakeCatalogsServer(t))

	catalogs, err := client.Catalogs.List(context.Background(), testWorkgroupID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalogs) != 2 {
		t.Fatalf("expected 2 catalogs, got %d", len(catalogs))
	}
	if !catalogs[0].Scan {
		t.Error("expected the scan flag to round-trip through the $scan wire name")
	}

	id, ok := client.cacheLookup(cacheCatalogs, "Open data")
	if !ok || id != testCatalogID {
		t.Errorf("expected catalog name cached, got %q (%v)", id, ok)
	}
}

func TestCatalogsCreateRejectsDuplicate(t *testing.T) {
	client := setup(t, fakeCatalogsServer(t))

	_, err := client.Catalogs.Create(context.Background(), testWorkgroupID, &models.Catalog{Name: "Open data"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	created, err := client.Catalogs.Create(context.Background(), testWorkgroupID, &models.Catalog{Name: "Fresh", Scan: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Fresh" || !created.Scan {
		t.Errorf("unexpected created catalog: %+v", created)
	}

	// the new catalog is cached too, a second create is a duplicate
	if _, err := client.Catalogs.Create(context.Background(), testWorkgroupID, &models.Catalog{Name: "Fresh"}); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists for the cached name, got %v", err)
	}
}

func TestCatalogsStatisticsByTagValidation(t *testing.T) {
	client := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an invalid facet")
	}))

	_, err := client.Catalogs.StatisticsByTag(context.Background(), testCatalogID, "color")
	if err == nil {
		t.Error("expected an error for an unknown statistics facet")
	}
}

func TestClearCache(t *testing.T) {
	client := setup(t, fakeCatalogsServer(t))

	if _, err := client.Catalogs.List(context.Background(), testWorkgroupID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.cacheEmpty(cacheCatalogs) {
		t.Fatal("expected the catalog cache to be populated")
	}

	client.ClearCache()
	if !client.cacheEmpty(cacheCatalogs) {
		t.Error("expected the catalog cache to be empty after ClearCache")
	}
}
