package models

// License is a reusable legal text owned by a workgroup or provided by the
// platform.
type License struct {
	Abilities []string   `json:"_abilities,omitempty"`
	ID        string     `json:"_id,omitempty"`
	Tag       string     `json:"_tag,omitempty"`
	Content   string     `json:"content,omitempty"`
	Count     int        `json:"count,omitempty"`
	Link      string     `json:"link,omitempty"`
	Name      string     `json:"name,omitempty"`
	Owner     *Workgroup `json:"owner,omitempty"`
}

// Specification is a standard a record can declare conformance against.
type Specification struct {
	ID        string     `json:"_id,omitempty"`
	Tag       string     `json:"_tag,omitempty"`
	Count     int        `json:"count,omitempty"`
	Link      string     `json:"link,omitempty"`
	Name      string     `json:"name,omitempty"`
	Owner     *Workgroup `json:"owner,omitempty"`
	Published string     `json:"published,omitempty"`
}

// Directive is an EU environment directive used as an INSPIRE limitation.
type Directive struct {
	ID          string `json:"_id,omitempty"`
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"`
}
