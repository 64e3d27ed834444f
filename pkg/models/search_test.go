package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTagsAsDicts(t *testing.T) {
	tags := map[string]string{
		"type:vector-dataset":            "Vector dataset",
		"format:shp":                     "Shapefile",
		"keyword:isogeo:roads":           "roads",
		"keyword:inspire-theme:tn":       "Transport networks",
		"owner:32f7e95ec4e94ca3bc1afda9": "My workgroup",
		"license:free":                   "Free license",
		"unexpected:tag":                 "ignored",
	}

	grouped := TagsAsDicts(tags)

	if got := grouped["types"]["Vector dataset"]; got != "type:vector-dataset" {
		t.Errorf("unexpected types entry: %q", got)
	}
	if got := grouped["formats"]["Shapefile"]; got != "format:shp" {
		t.Errorf("unexpected formats entry: %q", got)
	}
	// inspire themes are split out of the generic keyword family
	if got := grouped["inspires"]["Transport networks"]; got != "keyword:inspire-theme:tn" {
		t.Errorf("unexpected inspires entry: %q", got)
	}
	if got := grouped["keywords"]["roads"]; got != "keyword:isogeo:roads" {
		t.Errorf("unexpected keywords entry: %q", got)
	}
	if len(grouped["owners"]) != 1 || len(grouped["licenses"]) != 1 {
		t.Error("expected owner and license tags grouped")
	}

	for family, entries := range grouped {
		for _, tag := range entries {
			if strings.HasPrefix(tag, "unexpected:") {
				t.Errorf("unknown tag leaked into family %s", family)
			}
		}
	}
}

func TestTagsAsDictsEmptyLabel(t *testing.T) {
	grouped := TagsAsDicts(map[string]string{"format:dxf": ""})
	// unlabeled tags fall back to the tag itself as display label
	if got := grouped["formats"]["format:dxf"]; got != "format:dxf" {
		t.Errorf("unexpected fallback entry: %q", got)
	}
}

func TestCatalogScanWireName(t *testing.T) {
	data, err := json.Marshal(Catalog{Name: "scanned", Scan: true})
	if err != nil {
		t.Fatalf("marshaling: %v", err)
	}
	if !strings.Contains(string(data), `"$scan":true`) {
		t.Errorf("expected the $scan wire name, got %s", data)
	}

	var cat Catalog
	if err := json.Unmarshal([]byte(`{"_id":"x","name":"scanned","$scan":true}`), &cat); err != nil {
		t.Fatalf("unmarshaling: %v", err)
	}
	if !cat.Scan {
		t.Error("expected the scan flag set")
	}
}
