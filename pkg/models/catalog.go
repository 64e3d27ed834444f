package models

// Catalog is an entity used to organize and share metadata of a workgroup.
type Catalog struct {
	Abilities []string   `json:"_abilities,omitempty"`
	Created   string     `json:"_created,omitempty"`
	ID        string     `json:"_id,omitempty"`
	Modified  string     `json:"_modified,omitempty"`
	Tag       string     `json:"_tag,omitempty"`
	Code      string     `json:"code,omitempty"`
	Count     int        `json:"count,omitempty"`
	Name      string     `json:"name,omitempty"`
	Owner     *Workgroup `json:"owner,omitempty"`
	// Scan reports whether the catalog is fed by the scan worker. Wire
	// name is "$scan".
	Scan bool `json:"$scan,omitempty"`
}

// CatalogStatistics summarizes the content of a catalog.
type CatalogStatistics struct {
	Contacts           int `json:"contacts,omitempty"`
	Coordinatesystems  int `json:"coordinate-systems,omitempty"`
	Formats            int `json:"formats,omitempty"`
	InspireConformance int `json:"inspireConformance,omitempty"`
	Keywords           int `json:"keywords,omitempty"`
	Owners             int `json:"owners,omitempty"`
	Resources          int `json:"resources,omitempty"`
}
