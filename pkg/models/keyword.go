package models

// Keyword is a thesaurus entry that can be attached to records.
type Keyword struct {
	Abilities   []string       `json:"_abilities,omitempty"`
	Created     string         `json:"_created,omitempty"`
	ID          string         `json:"_id,omitempty"`
	Modified    string         `json:"_modified,omitempty"`
	Tag         string         `json:"_tag,omitempty"`
	Code        string         `json:"code,omitempty"`
	Count       map[string]int `json:"count,omitempty"`
	Description string         `json:"description,omitempty"`
	Thesaurus   *Thesaurus     `json:"thesaurus,omitempty"`
	Text        string         `json:"text,omitempty"`
}

// Thesaurus is a controlled vocabulary grouping keywords.
type Thesaurus struct {
	Abilities []string `json:"_abilities,omitempty"`
	ID        string   `json:"_id,omitempty"`
	Code      string   `json:"code,omitempty"`
	Name      string   `json:"name,omitempty"`
}

// Well-known thesaurus codes.
const (
	ThesaurusCodeIsogeo       = "isogeo"
	ThesaurusCodeInspireTheme = "inspire-theme"
)
