// Package feed drives paginated store retrieval for clients that render
// an infinite-scroll list. A Session tracks the active query and cursor,
// a PageFetcher supplies pages, and the Coordinator falls back from the
// remote API to the bundled static dataset when the API is unreachable.
package feed

import (
	"context"

	"ozicme/internal/domain/search"
)

// PageFetcher fetches one page of stores matching query starting at cursor.
type PageFetcher interface {
	FetchPage(ctx context.Context, query string, cursor, limit int) (*search.Page, error)
}
