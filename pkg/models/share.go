package models

// Share exposes the content of one or more catalogs to one or more
// applications. Tokens embedded in the share URL grant anonymous access to
// the open catalog and CSW endpoints.
type Share struct {
	Created      string        `json:"_created,omitempty"`
	Creator      *Workgroup    `json:"_creator,omitempty"`
	ID           string        `json:"_id,omitempty"`
	Modified     string        `json:"_modified,omitempty"`
	Applications []Application `json:"applications,omitempty"`
	Catalogs     []Catalog     `json:"catalogs,omitempty"`
	Groups       []Workgroup   `json:"groups,omitempty"`
	Name         string        `json:"name,omitempty"`
	Rights       []string      `json:"rights,omitempty"`
	Type         string        `json:"type,omitempty"`
	URLToken     string        `json:"urlToken,omitempty"`
}

// Application is a registered API consumer.
type Application struct {
	Created           string   `json:"_created,omitempty"`
	ID                string   `json:"_id,omitempty"`
	Modified          string   `json:"_modified,omitempty"`
	CanHaveManyGroups bool     `json:"canHaveManyGroups,omitempty"`
	Kind              string   `json:"kind,omitempty"`
	Name              string   `json:"name,omitempty"`
	RedirectURIs      []string `json:"redirectUris,omitempty"`
	Staff             bool     `json:"staff,omitempty"`
	Type              string   `json:"type,omitempty"`
	URL               string   `json:"url,omitempty"`
}

// User is a platform account.
type User struct {
	Created   string   `json:"_created,omitempty"`
	ID        string   `json:"_id,omitempty"`
	Modified  string   `json:"_modified,omitempty"`
	Contact   *Contact `json:"contact,omitempty"`
	Language  string   `json:"language,omitempty"`
	Mailchimp bool     `json:"mailchimp,omitempty"`
	Staff     bool     `json:"staff,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}

// Membership associates a user with a workgroup and a role.
type Membership struct {
	ID    string     `json:"_id,omitempty"`
	Group *Workgroup `json:"group,omitempty"`
	Role  string     `json:"role,omitempty"`
	User  *User      `json:"user,omitempty"`
}
