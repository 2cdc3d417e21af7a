package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki/fetcher"
)

func resultsPage(n int) string {
	var b strings.Builder
	b.WriteString(`<html><body><div class="results-info" data-mw-num-results-total="1234"></div>`)
	b.WriteString(`<ul class="mw-search-results">`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<li class="mw-search-result">
<div class="mw-search-result-heading"><a href="/wiki/Title_%d" title=" Title %d ">Title %d</a></div>
<div class="searchresult"> Snippet %d[%d] </div>
</li>`, i, i, i, i, i)
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}

func TestParseResultsCaps(t *testing.T) {
	for n := 0; n <= 15; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			res, err := ParseResults(strings.NewReader(resultsPage(n)), MaxResults)
			if n == 0 {
				assert.True(t, errors.Is(err, ErrNoResults))
				return
			}
			require.NoError(t, err)

			want := min(n, MaxResults)
			require.Len(t, res.Results, want)
			for i, r := range res.Results {
				assert.Equal(t, i+1, r.Rank)
				assert.Equal(t, fmt.Sprintf("Title %d", i+1), r.Title)
				assert.Equal(t, fmt.Sprintf("Snippet %d", i+1), r.Snippet)
			}
			assert.Equal(t, 1234, res.TotalFound)
		})
	}
}

func TestParseResultsMissingList(t *testing.T) {
	_, err := ParseResults(strings.NewReader(`<html><body><p>There were no results matching the query.</p></body></html>`), MaxResults)
	assert.True(t, errors.Is(err, ErrNoResults))
}

func TestParseResultsSkipsEntriesWithoutTitle(t *testing.T) {
	page := `<ul class="mw-search-results">
<li class="mw-search-result"><div class="searchresult">orphan</div></li>
<li class="mw-search-result"><a title="Kept">Kept</a><div class="searchresult">kept</div></li>
</ul>`
	res, err := ParseResults(strings.NewReader(page), 3)
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, Result{Rank: 1, Title: "Kept", Snippet: "kept"}, res.Results[0])
	assert.Zero(t, res.TotalFound)
}

func TestParseResultsWindowIsFirstEntries(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<ul class="mw-search-results">`)
	for i := 1; i <= 12; i++ {
		if i == 3 {
			b.WriteString(`<li class="mw-search-result"><div class="searchresult">untitled</div></li>`)
			continue
		}
		fmt.Fprintf(&b, `<li class="mw-search-result"><a title="T%d">T%d</a><div class="searchresult">s</div></li>`, i, i)
	}
	b.WriteString(`</ul>`)

	res, err := ParseResults(strings.NewReader(b.String()), MaxResults)
	require.NoError(t, err)
	require.Len(t, res.Results, 9)
	last := res.Results[len(res.Results)-1]
	assert.Equal(t, "T10", last.Title)
	assert.Equal(t, 9, last.Rank)
	assert.Equal(t, "T4", res.Results[2].Title)
	assert.Equal(t, 3, res.Results[2].Rank)
}

func TestWikipediaSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w/index.php", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("fulltext"))
		assert.Equal(t, "Special:Search", r.URL.Query().Get("title"))
		assert.Equal(t, "1", r.URL.Query().Get("ns0"))
		gotQuery = r.URL.Query().Get("search")
		w.Write([]byte(resultsPage(4)))
	}))
	defer srv.Close()

	p := NewWikipedia(fetcher.New(fetcher.Options{}, nil), srv.URL, 2)
	res, err := p.Search(context.Background(), "alan turing")
	require.NoError(t, err)

	assert.Equal(t, "alan turing", gotQuery)
	assert.Equal(t, "Wikipedia", res.Provider)
	assert.Equal(t, "alan turing", res.Query)
	require.Len(t, res.Results, 2)
	assert.Equal(t, srv.URL+"/wiki/Title_1", res.Results[0].URL)
	assert.False(t, res.SearchedAt.IsZero())
}

func TestWikipediaSearchFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewWikipedia(fetcher.New(fetcher.Options{}, nil), srv.URL, 0).Search(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoResults))
}
