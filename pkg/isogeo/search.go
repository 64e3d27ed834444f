package isogeo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/geoapis/go-isogeo/pkg/log"
	"github.com/geoapis/go-isogeo/pkg/models"
)

// maxPageSize is the largest page the search endpoint serves.
const maxPageSize = 100

// SearchService handles the metadata search routes of the API.
type SearchService service

// SearchOptions are the filters and options of a metadata search.
type SearchOptions struct {
	// Group searches within a workgroup instead of the global application
	// context. Must be a workgroup UUID.
	Group string
	// Query holds search terms and faceted tag filters, e.g.
	// "oil keyword:isogeo:formations type:vector-dataset". The AND
	// operator applies between tags.
	Query string
	// Share restricts the search to one share UUID.
	Share string
	// SpecificIDs restricts the search to the given record UUIDs.
	SpecificIDs []string
	// Include lists subresources to embed in each result.
	Include []string
	// BBox is a WGS84 bounding box (minx, miny, maxx, maxy). GeoRelation
	// applies to it.
	BBox []float64
	// Poly is a geographic filter in WKT. GeoRelation applies to it.
	Poly string
	// GeoRelation is the geometric operator applied to BBox or Poly:
	// contains, disjoint, equals, intersects (API default), overlaps,
	// within.
	GeoRelation string
	// OrderBy is one of _created, _modified, title, created, modified,
	// relevance.
	OrderBy string
	// OrderDir is desc (default) or asc.
	OrderDir string
	// PageSize limits the results (max 100). Zero asks for the search
	// context only, which is the cheapest way to learn the total.
	PageSize int
	Offset   int
	// Lang overrides the client localization for this search.
	Lang string
	// ExpectedTotal, when positive, is used for whole-results pagination
	// instead of issuing a probe request.
	ExpectedTotal int
	// AugmentShares adds share tags to the response on the fly.
	AugmentShares bool
	// WholeResults gathers every page of the search concurrently.
	WholeResults bool
}

var (
	validOrderBy  = map[string]bool{"": true, "_created": true, "_modified": true, "created": true, "modified": true, "relevance": true, "title": true}
	validOrderDir = map[string]bool{"": true, "asc": true, "desc": true}
	validGeoRel   = map[string]bool{"": true, "contains": true, "disjoint": true, "equals": true, "intersects": true, "overlaps": true, "within": true}
)

func (o SearchOptions) validate() error {
	if o.Group != "" {
		if err := checkUUID("workgroup", o.Group); err != nil {
			return err
		}
	}
	if o.Share != "" {
		if err := checkUUID("share", o.Share); err != nil {
			return err
		}
	}
	for _, id := range o.SpecificIDs {
		if err := checkUUID("metadata", id); err != nil {
			return err
		}
	}
	if !validOrderBy[o.OrderBy] {
		return fmt.Errorf("order by %q is not accepted by the search endpoint", o.OrderBy)
	}
	if !validOrderDir[o.OrderDir] {
		return fmt.Errorf("order direction must be asc or desc, got %q", o.OrderDir)
	}
	if !validGeoRel[o.GeoRelation] {
		return fmt.Errorf("georel %q is not a valid geometric operator", o.GeoRelation)
	}
	if len(o.BBox) != 0 && len(o.BBox) != 4 {
		return fmt.Errorf("bbox must have 4 coordinates, got %d", len(o.BBox))
	}
	if o.GeoRelation != "" && len(o.BBox) == 0 && o.Poly == "" {
		return fmt.Errorf("georel requires a bbox or a poly filter")
	}
	if o.PageSize < 0 || o.PageSize > maxPageSize {
		return fmt.Errorf("page size must be between 0 and %d, got %d", maxPageSize, o.PageSize)
	}
	return nil
}

func (o SearchOptions) query() url.Values {
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(o.PageSize))
	q.Set("_offset", strconv.Itoa(o.Offset))
	if o.Query != "" {
		q.Set("q", o.Query)
	}
	if o.Share != "" {
		q.Set("s", o.Share)
	}
	if len(o.SpecificIDs) > 0 {
		q.Set("_id", strings.Join(o.SpecificIDs, ","))
	}
	if len(o.Include) > 0 {
		q.Set("_include", strings.Join(o.Include, ","))
	}
	if len(o.BBox) == 4 {
		coords := make([]string, 4)
		for i, c := range o.BBox {
			coords[i] = strconv.FormatFloat(c, 'f', -1, 64)
		}
		q.Set("box", strings.Join(coords, ","))
	}
	if o.Poly != "" {
		q.Set("geo", o.Poly)
	}
	if o.GeoRelation != "" {
		q.Set("rel", o.GeoRelation)
	}
	if o.OrderBy != "" {
		q.Set("ob", o.OrderBy)
	}
	if o.OrderDir != "" {
		q.Set("od", o.OrderDir)
	}
	if o.Lang != "" {
		q.Set("_lang", o.Lang)
	}
	return q
}

func (o SearchOptions) path() string {
	if o.Group != "" {
		return fmt.Sprintf("groups/%s/resources/search", o.Group)
	}
	return "resources/search"
}

// Search runs a metadata search. With WholeResults set, every page is
// gathered: a probe request learns the total (unless ExpectedTotal is
// given), then one request per page offset runs on a bounded worker pool
// and the pages are concatenated, tag maps unioned. Pages are independent;
// the first page error aborts the aggregation.
func (s *SearchService) Search(ctx context.Context, opts SearchOptions) (*models.MetadataSearch, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var result *models.MetadataSearch
	var err error
	if opts.WholeResults {
		result, err = s.searchWhole(ctx, opts)
	} else {
		result, err = s.searchPage(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	if opts.AugmentShares {
		if err := s.augmentShares(ctx, result); err != nil {
			// augmentation is best effort on top of a complete response
			log.For("search").Warnf("could not augment search with share tags: %v", err)
		}
	}

	return result, nil
}

// searchPage issues a single search request.
func (s *SearchService) searchPage(ctx context.Context, opts SearchOptions) (*models.MetadataSearch, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, opts.path(), opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var search models.MetadataSearch
	if _, err := s.client.do(req, &search); err != nil {
		return nil, err
	}
	return &search, nil
}

// searchWhole implements the whole-results aggregation.
func (s *SearchService) searchWhole(ctx context.Context, opts SearchOptions) (*models.MetadataSearch, error) {
	l := log.For("search")

	total := opts.ExpectedTotal
	if total <= 0 {
		// probe with an empty page to learn the total
		probe := opts
		probe.PageSize = 0
		probe.Offset = 0
		probe.Include = nil
		probe.WholeResults = false
		ctxSearch, err := s.searchPage(ctx, probe)
		if err != nil {
			return nil, fmt.Errorf("probing search total: %w", err)
		}
		total = ctxSearch.Total
	}

	// a single full page is enough
	if total <= maxPageSize {
		l.Debugf("whole-results search fits in one page (total=%d)", total)
		single := opts
		single.PageSize = maxPageSize
		single.Offset = 0
		return s.searchPage(ctx, single)
	}

	pages := (total + maxPageSize - 1) / maxPageSize
	l.Debugf("whole-results search fans out over %d pages (total=%d)", pages, total)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	offsets := make(chan int)
	go func() {
		defer close(offsets)
		for page := 0; page < pages; page++ {
			select {
			case offsets <- page * maxPageSize:
			case <-ctx.Done():
				return
			}
		}
	}()

	merged := &models.MetadataSearch{
		Offset:  0,
		Query:   make(map[string]string),
		Results: make([]models.Metadata, 0, total),
		Tags:    make(map[string]string),
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	workers := s.client.maxWorkers
	if workers > pages {
		workers = pages
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for offset := range offsets {
				page := opts
				page.PageSize = maxPageSize
				page.Offset = offset
				page.WholeResults = false
				page.AugmentShares = false
				res, err := s.searchPage(ctx, page)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					return
				}
				merged.Envelope = res.Envelope
				merged.Limit = res.Total
				merged.Total = res.Total
				merged.Results = append(merged.Results, res.Results...)
				for k, v := range res.Query {
					merged.Query[k] = v
				}
				for k, v := range res.Tags {
					merged.Tags[k] = v
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return merged, nil
}

// augmentShares adds one "share:<id>" tag per share feeding the
// application, mirroring the augment option of the original SDK.
func (s *SearchService) augmentShares(ctx context.Context, search *models.MetadataSearch) error {
	shares, err := s.client.Shares.List(ctx, "")
	if err != nil {
		return err
	}
	if search.Tags == nil {
		search.Tags = make(map[string]string)
	}
	for _, share := range shares {
		search.Tags["share:"+share.ID] = share.Name
	}
	return nil
}
