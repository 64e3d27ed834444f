package models

import "strings"

// MetadataSearch is the envelope of a metadata search response.
//
// Tags maps vendor faceted tags (e.g. "format:shp", "owner:<uuid>") to their
// display label; Query holds the tags that were part of the request.
type MetadataSearch struct {
	Envelope map[string]any    `json:"envelope,omitempty"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Query    map[string]string `json:"query,omitempty"`
	Results  []Metadata        `json:"results"`
	Tags     map[string]string `json:"tags,omitempty"`
	Total    int               `json:"total"`
}

// KeywordSearch is the envelope of a keyword search response.
type KeywordSearch struct {
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
	Results []Keyword `json:"results"`
	Total   int       `json:"total"`
}

// TagsAsDicts regroups flat faceted tags by filter family, mirroring the
// "tags_as_dicts" option of the original SDK. Keys of the outer map are the
// facet names (keyword thesauri, formats, owners...), values map the display
// label to the full tag usable as a search filter.
func TagsAsDicts(tags map[string]string) map[string]map[string]string {
	out := map[string]map[string]string{
		"actions":            {},
		"catalogs":           {},
		"contacts":           {},
		"coordinate-systems": {},
		"formats":            {},
		"inspires":           {},
		"keywords":           {},
		"licenses":           {},
		"owners":             {},
		"providers":          {},
		"shares":             {},
		"types":              {},
	}
	for tag, label := range tags {
		family := tagFamily(tag)
		if family == "" {
			continue
		}
		if label == "" {
			label = tag
		}
		out[family][label] = tag
	}
	return out
}

func tagFamily(tag string) string {
	switch {
	case strings.HasPrefix(tag, "action:"):
		return "actions"
	case strings.HasPrefix(tag, "catalog:"):
		return "catalogs"
	case strings.HasPrefix(tag, "contact:"):
		return "contacts"
	case strings.HasPrefix(tag, "coordinate-system:"):
		return "coordinate-systems"
	case strings.HasPrefix(tag, "format:"):
		return "formats"
	case strings.HasPrefix(tag, "keyword:inspire-theme:"):
		return "inspires"
	case strings.HasPrefix(tag, "keyword:"):
		return "keywords"
	case strings.HasPrefix(tag, "license:"):
		return "licenses"
	case strings.HasPrefix(tag, "owner:"):
		return "owners"
	case strings.HasPrefix(tag, "provider:"):
		return "providers"
	case strings.HasPrefix(tag, "share:"):
		return "shares"
	case strings.HasPrefix(tag, "type:"):
		return "types"
	}
	return ""
}
