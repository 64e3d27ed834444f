package models

// Contact types returned by the API.
const (
	ContactTypeCustom = "custom"
	ContactTypeGroup  = "group"
	ContactTypeUser   = "user"
)

// Contact is an address book entry, either attached to a workgroup, derived
// from a user, or free-form ("custom").
type Contact struct {
	ID           string `json:"_id,omitempty"`
	Tag          string `json:"_tag,omitempty"`
	Deleted      bool   `json:"_deleted,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	Available    bool   `json:"available,omitempty"`
	City         string `json:"city,omitempty"`
	Count        int    `json:"count,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
	Email        string `json:"email,omitempty"`
	Fax          string `json:"fax,omitempty"`
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Type         string `json:"type,omitempty"`
	ZipCode      string `json:"zipCode,omitempty"`
}
