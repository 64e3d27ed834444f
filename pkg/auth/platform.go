package auth

import (
	"fmt"
	"strings"
)

// Platform names accepted by ResolvePlatform.
const (
	PlatformProd   = "prod"
	PlatformQA     = "qa"
	PlatformCustom = "custom"
)

// Platform groups the base URLs of one deployment of the vendor platform.
type Platform struct {
	Name string
	// APIURL is the REST API root, e.g. https://v1.api.isogeo.com
	APIURL string
	// IDURL is the authentication server root; tokens are fetched from
	// IDURL + "/oauth/token".
	IDURL string
	// AppURL, ManageURL and OpenURL point to the companion web
	// applications. Informational; used to build share and record links.
	AppURL    string
	ManageURL string
	OpenURL   string
}

var platforms = map[string]Platform{
	PlatformProd: {
		Name:      PlatformProd,
		APIURL:    "https://v1.api.isogeo.com",
		IDURL:     "https://id.api.isogeo.com",
		AppURL:    "https://app.isogeo.com",
		ManageURL: "https://manage.isogeo.com",
		OpenURL:   "https://open.isogeo.com",
	},
	PlatformQA: {
		Name:      PlatformQA,
		APIURL:    "https://v1.api.qa.isogeo.com",
		IDURL:     "https://id.api.qa.isogeo.com",
		AppURL:    "https://qa-isogeo-app.azurewebsites.net",
		ManageURL: "https://qa-isogeo-manage.azurewebsites.net",
		OpenURL:   "https://qa-isogeo-open.azurewebsites.net",
	},
}

// CustomURLs carries the URL set of a self-hosted platform.
type CustomURLs struct {
	APIURL string
	IDURL  string
}

// ResolvePlatform returns the URL set for a platform name. For "custom" the
// caller must supply at least the API URL.
func ResolvePlatform(name string, custom *CustomURLs) (Platform, error) {
	name = strings.ToLower(name)
	if p, ok := platforms[name]; ok {
		return p, nil
	}
	if name != PlatformCustom {
		return Platform{}, fmt.Errorf("platform must be one of: %s | %s | %s", PlatformProd, PlatformQA, PlatformCustom)
	}
	if custom == nil || custom.APIURL == "" {
		return Platform{}, fmt.Errorf("custom platform requires an API URL")
	}
	p := Platform{
		Name:   PlatformCustom,
		APIURL: strings.TrimSuffix(custom.APIURL, "/"),
		IDURL:  strings.TrimSuffix(custom.IDURL, "/"),
	}
	if p.IDURL == "" {
		p.IDURL = p.APIURL
	}
	return p, nil
}

// TokenURL returns the OAuth2 token endpoint of the platform.
func (p Platform) TokenURL() string {
	return p.IDURL + "/oauth/token"
}
