package models

// Metadata record types.
const (
	TypeVectorDataset = "vector-dataset"
	TypeRasterDataset = "raster-dataset"
	TypeService       = "service"
	TypeResource      = "resource"
	TypeNoGeoDataset  = "no-geo-dataset"
)

// Metadata is a catalog record describing a geographic dataset or service.
// The vendor API also calls it a "resource".
type Metadata struct {
	Abilities []string   `json:"_abilities,omitempty"`
	Created   string     `json:"_created,omitempty"`
	Creator   *Workgroup `json:"_creator,omitempty"`
	ID        string     `json:"_id,omitempty"`
	Modified  string     `json:"_modified,omitempty"`

	Abstract          string            `json:"abstract,omitempty"`
	CollectionContext string            `json:"collectionContext,omitempty"`
	CollectionMethod  string            `json:"collectionMethod,omitempty"`
	Conditions        []Condition       `json:"conditions,omitempty"`
	Contacts          []ContactRole     `json:"contacts,omitempty"`
	CoordinateSystem  *CoordinateSystem `json:"coordinateSystem,omitempty"`
	// DataCreated and DataModified describe the data itself, unlike
	// Created/Modified which describe the record.
	DataCreated            string             `json:"created,omitempty"`
	DataModified           string             `json:"modified,omitempty"`
	Distance               float64            `json:"distance,omitempty"`
	EditionProfile         string             `json:"editionProfile,omitempty"`
	Encoding               string             `json:"encoding,omitempty"`
	Envelope               map[string]any     `json:"envelope,omitempty"`
	Events                 []Event            `json:"events,omitempty"`
	FeatureAttributes      []FeatureAttribute `json:"featureAttributes,omitempty"`
	Features               int                `json:"features,omitempty"`
	Format                 string             `json:"format,omitempty"`
	FormatVersion          string             `json:"formatVersion,omitempty"`
	Geometry               string             `json:"geometry,omitempty"`
	Keywords               []Keyword          `json:"keywords,omitempty"`
	Language               string             `json:"language,omitempty"`
	Limitations            []Limitation       `json:"limitations,omitempty"`
	Links                  []Link             `json:"links,omitempty"`
	Name                   string             `json:"name,omitempty"`
	Path                   string             `json:"path,omitempty"`
	Published              string             `json:"published,omitempty"`
	Scale                  int                `json:"scale,omitempty"`
	Series                 bool               `json:"series,omitempty"`
	ServiceLayers          []ServiceLayer     `json:"serviceLayers,omitempty"`
	Specifications         []Conformity       `json:"specifications,omitempty"`
	Tags                   []string           `json:"tags,omitempty"`
	Title                  string             `json:"title,omitempty"`
	TopologicalConsistency string             `json:"topologicalConsistency,omitempty"`
	Type                   string             `json:"type,omitempty"`
	UpdateFrequency        string             `json:"updateFrequency,omitempty"`
	ValidFrom              string             `json:"validFrom,omitempty"`
	ValidTo                string             `json:"validTo,omitempty"`
	ValidityComment        string             `json:"validityComment,omitempty"`
}

// ContactRole associates a contact with its role on a record.
type ContactRole struct {
	Contact *Contact `json:"contact,omitempty"`
	Role    string   `json:"role,omitempty"`
}

// Event is a lifecycle entry of a record: creation, update or publication.
type Event struct {
	ID          string `json:"_id,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind,omitempty"`
}

// Condition attaches a license with optional free-text to a record.
type Condition struct {
	ID          string   `json:"_id,omitempty"`
	Description string   `json:"description,omitempty"`
	License     *License `json:"license,omitempty"`
}

// Conformity declares conformance of a record against a specification.
type Conformity struct {
	Conformant    bool           `json:"conformant"`
	Specification *Specification `json:"specification,omitempty"`
}

// Limitation is a legal or security restriction on a record.
type Limitation struct {
	ID          string     `json:"_id,omitempty"`
	Description string     `json:"description,omitempty"`
	Directive   *Directive `json:"directive,omitempty"`
	Restriction string     `json:"restriction,omitempty"`
	Type        string     `json:"type,omitempty"`
}

// Link points from a record to an associated resource: download, service
// endpoint, documentation...
type Link struct {
	ID      string   `json:"_id,omitempty"`
	Actions []string `json:"actions,omitempty"`
	Kind    string   `json:"kind,omitempty"`
	Title   string   `json:"title,omitempty"`
	Type    string   `json:"type,omitempty"`
	URL     string   `json:"url,omitempty"`
}

// FeatureAttribute describes one column of a vector dataset.
type FeatureAttribute struct {
	ID          string `json:"_id,omitempty"`
	Alias       string `json:"alias,omitempty"`
	DataType    string `json:"dataType,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Name        string `json:"name,omitempty"`
}

// ServiceLayer is a layer exposed by a geographic web service record.
type ServiceLayer struct {
	ID        string         `json:"_id,omitempty"`
	Dataset   map[string]any `json:"dataset,omitempty"`
	MimeTypes []string       `json:"mimeTypes,omitempty"`
	Name      string         `json:"name,omitempty"`
	Titles    []LayerTitle   `json:"titles,omitempty"`
	Type      string         `json:"type,omitempty"`
}

// LayerTitle is a localized title of a service layer.
type LayerTitle struct {
	Lang  string `json:"lang,omitempty"`
	Value string `json:"value,omitempty"`
}

// ServiceOperation is an operation exposed by a geographic web service
// record (GetMap, GetFeature...).
type ServiceOperation struct {
	ID           string   `json:"_id,omitempty"`
	MimeTypesIn  []string `json:"mimeTypesIn,omitempty"`
	MimeTypesOut []string `json:"mimeTypesOut,omitempty"`
	Name         string   `json:"name,omitempty"`
	URL          string   `json:"url,omitempty"`
	Verb         string   `json:"verb,omitempty"`
}
