// Package isogeo is a client for the Isogeo REST API (metadata catalog
// management for geographic datasets).
//
// A Client is built from an *http.Client that already carries authentication,
// typically the one returned by auth.Client which attaches and renews the
// OAuth2 bearer token:
//
//	platform, _ := auth.ResolvePlatform("prod", nil)
//	httpClient, err := auth.Client(ctx, creds, platform)
//	client, err := isogeo.NewClient(httpClient, isogeo.WithPlatform(platform))
//	results, err := client.Search.Search(ctx, isogeo.SearchOptions{Query: "type:vector-dataset"})
//
// Each resource family of the API is exposed as a service on the Client.
package isogeo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/geoapis/go-isogeo/pkg/auth"
	"github.com/geoapis/go-isogeo/pkg/log"
	"github.com/geoapis/go-isogeo/pkg/version"
)

// defaultMaxWorkers bounds the whole-results search fan-out.
const defaultMaxWorkers = 10

// Client manages communication with the API.
type Client struct {
	client     *http.Client
	baseURL    *url.URL
	platform   auth.Platform
	userAgent  string
	lang       string
	maxWorkers int

	// name -> ID caches populated opportunistically by listing calls
	mu    sync.Mutex
	names map[string]map[string]string

	common service

	About             *AboutService
	Account           *AccountService
	Applications      *ApplicationsService
	Catalogs          *CatalogsService
	Contacts          *ContactsService
	CoordinateSystems *CoordinateSystemsService
	Datasources       *DatasourcesService
	Directives        *DirectivesService
	Events            *EventsService
	Formats           *FormatsService
	Invitations       *InvitationsService
	Keywords          *KeywordsService
	Licenses          *LicensesService
	Limitations       *LimitationsService
	Links             *LinksService
	Metadata          *MetadataService
	Search            *SearchService
	ServiceLayers     *ServiceLayersService
	ServiceOperations *ServiceOperationsService
	Shares            *SharesService
	Specifications    *SpecificationsService
	Thesauri          *ThesauriService
	Users             *UsersService
	Workgroups        *WorkgroupsService
}

type service struct {
	client *Client
}

// Option customizes a Client.
type Option func(*Client) error

// WithPlatform points the client at a resolved platform (prod, qa or
// custom).
func WithPlatform(platform auth.Platform) Option {
	return func(c *Client) error {
		u, err := url.Parse(platform.APIURL + "/")
		if err != nil {
			return fmt.Errorf("parsing API URL: %w", err)
		}
		c.platform = platform
		c.baseURL = u
		return nil
	}
}

// WithBaseURL overrides the API root URL. Mostly useful for tests.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(strings.TrimSuffix(rawURL, "/") + "/")
		if err != nil {
			return fmt.Errorf("parsing base URL: %w", err)
		}
		c.baseURL = u
		return nil
	}
}

// WithLanguage sets the API localization. Only English and French are
// served; anything else falls back to English.
func WithLanguage(lang string) Option {
	return func(c *Client) error {
		c.lang = normalizeLang(lang)
		return nil
	}
}

// WithUserAgent customizes the application name sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithMaxWorkers bounds the concurrency of whole-results searches.
func WithMaxWorkers(n int) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("max workers must be positive, got %d", n)
		}
		c.maxWorkers = n
		return nil
	}
}

func normalizeLang(lang string) string {
	tag, err := language.Parse(lang)
	if err == nil {
		base, _ := tag.Base()
		switch base.String() {
		case "fr":
			return "fr"
		case "en":
			return "en"
		}
	}
	log.For("client").Warnf("API is only served in English or French, falling back to English (asked: %q)", lang)
	return "en"
}

// NewClient returns an API client using the provided HTTP client, which is
// expected to handle authentication (see package auth). Passing nil uses
// http.DefaultClient; only the About routes work unauthenticated.
func NewClient(httpClient *http.Client, opts ...Option) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		client:     httpClient,
		userAgent:  version.UserAgent(),
		lang:       "en",
		maxWorkers: defaultMaxWorkers,
		names:      make(map[string]map[string]string),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.baseURL == nil {
		platform, err := auth.ResolvePlatform(auth.PlatformProd, nil)
		if err != nil {
			return nil, err
		}
		if err := WithPlatform(platform)(c); err != nil {
			return nil, err
		}
	}

	c.common.client = c
	c.About = (*AboutService)(&c.common)
	c.Account = (*AccountService)(&c.common)
	c.Applications = (*ApplicationsService)(&c.common)
	c.Catalogs = (*CatalogsService)(&c.common)
	c.Contacts = (*ContactsService)(&c.common)
	c.CoordinateSystems = (*CoordinateSystemsService)(&c.common)
	c.Datasources = (*DatasourcesService)(&c.common)
	c.Directives = (*DirectivesService)(&c.common)
	c.Events = (*EventsService)(&c.common)
	c.Formats = (*FormatsService)(&c.common)
	c.Invitations = (*InvitationsService)(&c.common)
	c.Keywords = (*KeywordsService)(&c.common)
	c.Licenses = (*LicensesService)(&c.common)
	c.Limitations = (*LimitationsService)(&c.common)
	c.Links = (*LinksService)(&c.common)
	c.Metadata = (*MetadataService)(&c.common)
	c.Search = (*SearchService)(&c.common)
	c.ServiceLayers = (*ServiceLayersService)(&c.common)
	c.ServiceOperations = (*ServiceOperationsService)(&c.common)
	c.Shares = (*SharesService)(&c.common)
	c.Specifications = (*SpecificationsService)(&c.common)
	c.Thesauri = (*ThesauriService)(&c.common)
	c.Users = (*UsersService)(&c.common)
	c.Workgroups = (*WorkgroupsService)(&c.common)

	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Platform returns the platform the client was built for.
func (c *Client) Platform() auth.Platform {
	return c.platform
}

// newRequest builds an API request. path is relative to the API root and
// must not start with a slash.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if query == nil {
		query = url.Values{}
	}
	if query.Get("_lang") == "" {
		query.Set("_lang", c.lang)
	}
	u.RawQuery = query.Encode()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		buf = strings.NewReader(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.lang)

	return req, nil
}

// do sends a request and decodes the JSON response into v when v is non-nil.
func (c *Client) do(req *http.Request, v any) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.For("client").Warnf("closing response body: %v", err)
		}
	}()

	if err := checkResponse(resp); err != nil {
		return resp, err
	}

	if v == nil {
		return resp, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp, fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	return resp, nil
}

// doRaw sends a request and returns the raw response body.
func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.For("client").Warnf("closing response body: %v", err)
		}
	}()

	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

// includeQuery encodes the _include subresource list.
func includeQuery(include []string) url.Values {
	q := url.Values{}
	if len(include) > 0 {
		q.Set("_include", strings.Join(include, ","))
	}
	return q
}
