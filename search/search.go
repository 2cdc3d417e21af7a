// Package search lists candidate article titles for a query.
package search

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
)

// MaxResults caps how many results are offered for selection.
const MaxResults = 10

// ErrNoResults means the search page carried no result list. It is a valid
// outcome rather than a failure.
var ErrNoResults = errors.New("no results")

// Result represents a single search result.
type Result struct {
	Rank    int    // 1-based position in document order
	Title   string // Page title
	URL     string // Full URL
	Snippet string // Description/snippet text
}

// Results represents a complete search response with metadata.
type Results struct {
	Query      string    // The search query
	Provider   string    // Provider that executed the search
	Results    []Result  // The actual results
	TotalFound int       // Total results found (may be > len(Results)), 0 if unknown
	SearchedAt time.Time // When the search was performed
}

// Provider defines the interface for search providers.
type Provider interface {
	// Search performs a search and returns results, or ErrNoResults.
	Search(ctx context.Context, query string) (*Results, error)

	// Name returns the provider's display name.
	Name() string
}
