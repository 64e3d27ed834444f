package models

// Workgroup is the tenant entity: it owns contacts, catalogs, licenses,
// specifications and metadata records.
type Workgroup struct {
	Abilities                   []string       `json:"_abilities,omitempty"`
	Created                     string         `json:"_created,omitempty"`
	ID                          string         `json:"_id,omitempty"`
	Modified                    string         `json:"_modified,omitempty"`
	Tag                         string         `json:"_tag,omitempty"`
	AreKeywordsRestricted       bool           `json:"areKeywordsRestricted,omitempty"`
	BaseMapURL                  string         `json:"baseMapUrl,omitempty"`
	CanCreateLegacyServiceLinks bool           `json:"canCreateLegacyServiceLinks,omitempty"`
	CanCreateMetadata           bool           `json:"canCreateMetadata,omitempty"`
	Code                        string         `json:"code,omitempty"`
	Contact                     *Contact       `json:"contact,omitempty"`
	HasCSWClient                bool           `json:"hasCswClient,omitempty"`
	HasScanFME                  bool           `json:"hasScanFme,omitempty"`
	KeywordsCasing              string         `json:"keywordsCasing,omitempty"`
	Limits                      map[string]any `json:"limits,omitempty"`
	MetadataLanguage            string         `json:"metadataLanguage,omitempty"`
	ThemeColor                  string         `json:"themeColor,omitempty"`
}

// WorkgroupStatistics summarizes the content of a workgroup.
type WorkgroupStatistics struct {
	Catalogs  int `json:"catalogs,omitempty"`
	Contacts  int `json:"contacts,omitempty"`
	Keywords  int `json:"keywords,omitempty"`
	Resources int `json:"resources,omitempty"`
}

// WorkgroupInvitation is a pending invitation to join a workgroup.
type WorkgroupInvitation struct {
	Created   string     `json:"_created,omitempty"`
	ID        string     `json:"_id,omitempty"`
	Modified  string     `json:"_modified,omitempty"`
	Email     string     `json:"email,omitempty"`
	ExpiresIn int        `json:"expiresIn,omitempty"`
	Group     *Workgroup `json:"group,omitempty"`
	Role      string     `json:"role,omitempty"`
}
