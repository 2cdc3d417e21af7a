package article

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/Laisky/errors/v2"

	"wiki/fetcher"
)

// ErrNotFound means Wikipedia has no article with the exact requested name.
var ErrNotFound = errors.New("article not found")

// DefaultBaseURL is the English Wikipedia origin.
const DefaultBaseURL = "https://en.wikipedia.org"

// URL returns the article address for title, with spaces turned into underscores.
func URL(baseURL, title string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrapf(err, "parsing base url %q", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/wiki/" + strings.ReplaceAll(title, " ", "_")
	// Keep characters such as parentheses literal; anything invalid in a
	// path still gets escaped.
	u.RawPath = u.Path
	u.RawQuery = ""
	return u.String(), nil
}

// Fetch retrieves and extracts the article for title. A 404 is returned as
// ErrNotFound; any other failure is a fetch error.
func Fetch(ctx context.Context, c *fetcher.Client, baseURL, title string, opts Options) (*Article, error) {
	addr, err := URL(baseURL, title)
	if err != nil {
		return nil, err
	}

	res, err := c.Get(ctx, addr)
	if err != nil {
		if fetcher.IsNotFound(err) {
			return nil, errors.Wrapf(ErrNotFound, "%q", title)
		}
		return nil, err
	}

	a, err := Extract(bytes.NewReader(res.HTML), opts)
	if err != nil {
		return nil, err
	}
	a.URL = res.FinalURL
	a.FetchTime = res.FetchTime
	if a.Title == "" {
		a.Title = title
	}
	return a, nil
}
