package isogeo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// KeywordsService handles the keyword routes of the API.
type KeywordsService service

// KeywordSearchOptions are the filters of a keyword search.
type KeywordSearchOptions struct {
	// Query is the free-text part of the search.
	Query string
	// Include lists subresources to embed (count, thesaurus...).
	Include []string
	// OrderBy is one of count, count.group, count.isogeo, text.
	OrderBy string
	// OrderDir is desc (default) or asc.
	OrderDir string
	// PageSize limits the results (max 100). Zero asks for the search
	// context only.
	PageSize int
	Offset   int
	// WholeResults gathers every page of the search.
	WholeResults bool
}

var validKeywordOrderBy = map[string]bool{"": true, "count": true, "count.group": true, "count.isogeo": true, "text": true}

func (o KeywordSearchOptions) validate() error {
	if !validKeywordOrderBy[o.OrderBy] {
		return fmt.Errorf("order by %q is not accepted by the keyword search endpoint", o.OrderBy)
	}
	if !validOrderDir[o.OrderDir] {
		return fmt.Errorf("order direction must be asc or desc, got %q", o.OrderDir)
	}
	if o.PageSize < 0 || o.PageSize > maxPageSize {
		return fmt.Errorf("page size must be between 0 and %d, got %d", maxPageSize, o.PageSize)
	}
	return nil
}

func (o KeywordSearchOptions) query() url.Values {
	q := url.Values{}
	q.Set("_limit", strconv.Itoa(o.PageSize))
	q.Set("_offset", strconv.Itoa(o.Offset))
	if o.Query != "" {
		q.Set("th", o.Query)
	}
	if len(o.Include) > 0 {
		q.Set("_include", strings.Join(o.Include, ","))
	}
	if o.OrderBy != "" {
		q.Set("ob", o.OrderBy)
	}
	if o.OrderDir != "" {
		q.Set("od", o.OrderDir)
	}
	return q
}

// Get returns one keyword.
func (s *KeywordsService) Get(ctx context.Context, keywordID string, include ...string) (*models.Keyword, error) {
	if err := checkUUID("keyword", keywordID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("keywords/%s", keywordID), includeQuery(include), nil)
	if err != nil {
		return nil, err
	}

	var kw models.Keyword
	if _, err := s.client.do(req, &kw); err != nil {
		return nil, err
	}
	return &kw, nil
}

// Create adds a keyword to a thesaurus.
func (s *KeywordsService) Create(ctx context.Context, thesaurusID, text string) (*models.Keyword, error) {
	if err := checkUUID("thesaurus", thesaurusID); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("a keyword requires a text")
	}

	payload := struct {
		Text string `json:"text"`
	}{text}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("thesauri/%s/keywords", thesaurusID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.Keyword
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a keyword from its thesaurus.
func (s *KeywordsService) Delete(ctx context.Context, thesaurusID, keywordID string) error {
	if err := checkUUID("thesaurus", thesaurusID); err != nil {
		return err
	}
	if err := checkUUID("keyword", keywordID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("thesauri/%s/keywords/%s", thesaurusID, keywordID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Tag attaches a keyword to a record.
func (s *KeywordsService) Tag(ctx context.Context, metadataID, keywordID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("keyword", keywordID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("resources/%s/keywords/%s", metadataID, keywordID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Untag detaches a keyword from a record.
func (s *KeywordsService) Untag(ctx context.Context, metadataID, keywordID string) error {
	if err := checkUUID("metadata", metadataID); err != nil {
		return err
	}
	if err := checkUUID("keyword", keywordID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("resources/%s/keywords/%s", metadataID, keywordID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Search searches the keywords of a thesaurus. With WholeResults set,
// every page is gathered the same way the metadata search does it: a probe
// request learns the total, then one request per page offset runs on a
// bounded worker pool and the pages are concatenated.
func (s *KeywordsService) Search(ctx context.Context, thesaurusID string, opts KeywordSearchOptions) (*models.KeywordSearch, error) {
	if err := checkUUID("thesaurus", thesaurusID); err != nil {
		return nil, err
	}
	return s.search(ctx, fmt.Sprintf("thesauri/%s/keywords/search", thesaurusID), opts)
}

// SearchWorkgroup searches the keywords in use within a workgroup.
func (s *KeywordsService) SearchWorkgroup(ctx context.Context, workgroupID string, opts KeywordSearchOptions) (*models.KeywordSearch, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	return s.search(ctx, fmt.Sprintf("groups/%s/keywords/search", workgroupID), opts)
}

func (s *KeywordsService) search(ctx context.Context, path string, opts KeywordSearchOptions) (*models.KeywordSearch, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !opts.WholeResults {
		return s.searchPage(ctx, path, opts)
	}

	// probe with an empty page to learn the total
	probe := opts
	probe.PageSize = 0
	probe.Offset = 0
	ctxSearch, err := s.searchPage(ctx, path, probe)
	if err != nil {
		return nil, fmt.Errorf("probing keyword search total: %w", err)
	}
	total := ctxSearch.Total

	// a single full page is enough
	if total <= maxPageSize {
		single := opts
		single.PageSize = maxPageSize
		single.Offset = 0
		return s.searchPage(ctx, path, single)
	}

	pages := (total + maxPageSize - 1) / maxPageSize

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

	merged := &models.KeywordSearch{
		Limit:   total,
		Results: make([]models.Keyword, 0, total),
		Total:   total,
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
				res, err := s.searchPage(ctx, path, page)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					return
				}
				merged.Results = append(merged.Results, res.Results...)
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

func (s *KeywordsService) searchPage(ctx context.Context, path string, opts KeywordSearchOptions) (*models.KeywordSearch, error) {
	req, err := s.client.newRequest(ctx, http.MethodGet, path, opts.query(), nil)
	if err != nil {
		return nil, err
	}

	var search models.KeywordSearch
	if _, err := s.client.do(req, &search); err != nil {
		return nil, err
	}
	return &search, nil
}
