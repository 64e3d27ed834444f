package isogeo

// Cache families. Listing calls opportunistically memoize name -> ID maps so
// that Create methods can cheaply detect duplicates without another round
// trip.
const (
	cacheCatalogs       = "catalogs"
	cacheContacts       = "contacts"
	cacheDatasources    = "datasources"
	cacheLicenses       = "licenses"
	cacheShares         = "shares"
	cacheSpecifications = "specifications"
	cacheWorkgroups     = "workgroups"
)

func (c *Client) cacheReplace(family string, entries map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[family] = entries
}

func (c *Client) cacheStore(family, name, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.names[family] == nil {
		c.names[family] = make(map[string]string)
	}
	c.names[family][name] = id
}

func (c *Client) cacheLookup(family, name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.names[family][name]
	return id, ok
}

func (c *Client) cacheEmpty(family string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.names[family]) == 0
}

// ClearCache drops every memoized name map. Subsequent Create calls will
// refresh them with a listing request.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = make(map[string]map[string]string)
}
