package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"wiki/article"
	"wiki/fetcher"
)

// Wikipedia implements the Provider interface by scraping the full-text
// search page.
type Wikipedia struct {
	client  *fetcher.Client
	baseURL string
	limit   int
}

// NewWikipedia creates a new Wikipedia search provider. limit is clamped to
// 1..MaxResults.
func NewWikipedia(client *fetcher.Client, baseURL string, limit int) *Wikipedia {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	return &Wikipedia{client: client, baseURL: strings.TrimRight(baseURL, "/"), limit: limit}
}

// Name returns the provider name.
func (w *Wikipedia) Name() string {
	return "Wikipedia"
}

// SearchURL returns the full-text search address for query.
func SearchURL(baseURL, query string) string {
	return fmt.Sprintf("%s/w/index.php?fulltext=1&search=%s&title=Special%%3ASearch&ns0=1",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(query))
}

// Search performs a Wikipedia full-text search and returns parsed results.
func (w *Wikipedia) Search(ctx context.Context, query string) (*Results, error) {
	searchedAt := time.Now()

	res, err := w.client.Get(ctx, SearchURL(w.baseURL, query))
	if err != nil {
		return nil, errors.Wrap(err, "fetching results")
	}

	results, err := ParseResults(bytes.NewReader(res.HTML), w.limit)
	if err != nil {
		return nil, err
	}
	for i := range results.Results {
		addr, err := article.URL(w.baseURL, results.Results[i].Title)
		if err != nil {
			return nil, err
		}
		results.Results[i].URL = addr
	}
	results.Query = query
	results.Provider = w.Name()
	results.SearchedAt = searchedAt
	return results, nil
}

var (
	listSelector    = cascadia.MustCompile("ul.mw-search-results")
	entrySelector   = cascadia.MustCompile("li.mw-search-result")
	linkSelector    = cascadia.MustCompile("a[title]")
	snippetSelector = cascadia.MustCompile("div.searchresult")
	infoSelector    = cascadia.MustCompile(".results-info")
)

// ParseResults reads the first limit entries of a search results page.
// Entries without a title are skipped, so fewer results may come back. A
// page without a results list, or with no usable entry, yields ErrNoResults.
func ParseResults(r io.Reader, limit int) (*Results, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing results HTML")
	}

	list := doc.FindMatcher(listSelector).First()
	if list.Length() == 0 {
		return nil, ErrNoResults
	}

	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	results := &Results{}
	list.FindMatcher(entrySelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		title, ok := s.FindMatcher(linkSelector).First().Attr("title")
		title = strings.TrimSpace(title)
		if !ok || title == "" {
			return i+1 < limit
		}
		snippet := strings.TrimSpace(s.FindMatcher(snippetSelector).First().Text())
		results.Results = append(results.Results, Result{
			Rank:    len(results.Results) + 1,
			Title:   title,
			Snippet: article.CleanReferences(snippet),
		})
		return i+1 < limit
	})
	if len(results.Results) == 0 {
		return nil, ErrNoResults
	}

	if total, ok := doc.FindMatcher(infoSelector).First().Attr("data-mw-num-results-total"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(total)); err == nil {
			results.TotalFound = n
		}
	}
	return results, nil
}
