package models

// CoordinateSystem is an EPSG reference system, optionally aliased by a
// workgroup.
type CoordinateSystem struct {
	Tag   string `json:"_tag,omitempty"`
	Alias string `json:"alias,omitempty"`
	Code  string `json:"code,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Datasource is a scan entry point registered on a workgroup.
type Datasource struct {
	Created       string `json:"_created,omitempty"`
	ID            string `json:"_id,omitempty"`
	Modified      string `json:"_modified,omitempty"`
	Tag           string `json:"_tag,omitempty"`
	Enabled       bool   `json:"enabled,omitempty"`
	Location      string `json:"location,omitempty"`
	Name          string `json:"name,omitempty"`
	ResourceCount int    `json:"resourceCount,omitempty"`
}

// Format is a data format known by the platform, geographic or not.
type Format struct {
	ID       string   `json:"_id,omitempty"`
	Tag      string   `json:"_tag,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
	Code     string   `json:"code,omitempty"`
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type,omitempty"`
	Versions []string `json:"versions,omitempty"`
}

// LinkKind is one entry of the link kind/action matrix.
type LinkKind struct {
	Actions []string `json:"actions,omitempty"`
	Kind    string   `json:"kind,omitempty"`
}

// About reports the version of a platform component.
type About struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}
