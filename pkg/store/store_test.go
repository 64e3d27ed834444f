package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/geoapis/go-isogeo/pkg/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "snapshot.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	return s
}

func sampleRecords() []models.Metadata {
	return []models.Metadata{
		{
			ID:       "0123456789abcdef0123456789abcdef",
			Title:    "Road network of the region",
			Abstract: "Every paved road, updated yearly",
			Type:     models.TypeVectorDataset,
			Modified: "2026-02-01T10:00:00Z",
			Keywords: []models.Keyword{{Text: "transport"}, {Text: "roads"}},
		},
		{
			ID:       "fedcba9876543210fedcba9876543210",
			Title:    "Land registry parcels",
			Abstract: "Cadastral parcels",
			Type:     models.TypeVectorDataset,
			Modified: "2026-01-15T10:00:00Z",
		},
	}
}

func TestSaveAndSearch(t *testing.T) {
	s := testStore(t)

	if err := s.SaveRecords(sampleRecords()); err != nil {
		t.Fatalf("saving records: %v", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 records, got %d", count)
	}

	// full-text match on the title
	records, err := s.Search("road", 10)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 match, got %d", len(records))
	}
	if records[0].Title != "Road network of the region" {
		t.Errorf("unexpected match: %s", records[0].Title)
	}

	// keywords are indexed too
	records, err = s.Search("transport", 10)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected a keyword match, got %d records", len(records))
	}

	// empty query lists newest first
	records, err = s.Search("", 10)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "0123456789abcdef0123456789abcdef" {
		t.Errorf("expected newest record first, got %s", records[0].ID)
	}
}

func TestSaveIsUpsert(t *testing.T) {
	s := testStore(t)

	records := sampleRecords()
	if err := s.SaveRecords(records); err != nil {
		t.Fatalf("saving records: %v", err)
	}

	records[0].Title = "Road network, second edition"
	if err := s.SaveRecords(records[:1]); err != nil {
		t.Fatalf("re-saving record: %v", err)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected upsert to keep 2 records, got %d", count)
	}

	rec, err := s.Get(records[0].ID)
	if err != nil {
		t.Fatalf("getting record: %v", err)
	}
	if rec.Title != "Road network, second edition" {
		t.Errorf("expected the updated title, got %q", rec.Title)
	}
	if rec.Raw.Title != rec.Title {
		t.Error("raw record out of sync with indexed fields")
	}
}

func TestEachAndDelete(t *testing.T) {
	s := testStore(t)

	if err := s.SaveRecords(sampleRecords()); err != nil {
		t.Fatalf("saving records: %v", err)
	}

	var seen []string
	err := s.Each(func(rec Record) error {
		seen = append(seen, rec.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("iterating: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 records, got %d", len(seen))
	}

	if err := s.Delete(seen[0]); err != nil {
		t.Fatalf("deleting: %v", err)
	}
	count, err := s.Count()
	if err != nil {
		t.Fatalf("counting: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 record after delete, got %d", count)
	}
}

func TestLastSync(t *testing.T) {
	s := testStore(t)

	last, err := s.LastSync()
	if err != nil {
		t.Fatalf("reading last sync: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("expected zero time before any sync, got %v", last)
	}

	now := time.Now().Truncate(time.Second)
	if err := s.SetLastSync(now); err != nil {
		t.Fatalf("recording sync: %v", err)
	}

	last, err = s.LastSync()
	if err != nil {
		t.Fatalf("reading last sync: %v", err)
	}
	if !last.Equal(now) {
		t.Errorf("expected %v, got %v", now, last)
	}
}
