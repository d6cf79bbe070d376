package feed

import (
	"context"
	"fmt"
	"sync"

	"ozicme/internal/domain/search"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateLoading
	stateError
)

// Session tracks pagination across a sequence of page fetches for one
// query. It is meant for a single consumer: one goroutine calls
// NextPage, Reset, and Retry. Reset may race an in-flight NextPage; the
// generation counter drops the stale result in that case.
type Session struct {
	fetcher  PageFetcher
	pageSize int

	mu          sync.Mutex
	state       sessionState
	activeQuery string
	cursor      int
	hasMore     bool
	totalCount  int
	generation  uint64
	lastKey     string
}

// NewSession returns a Session that pages through fetcher pageSize at a
// time, positioned at the start of the unfiltered list.
func NewSession(fetcher PageFetcher, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Session{
		fetcher:  fetcher,
		pageSize: pageSize,
		hasMore:  true,
	}
}

// Reset points the session at a new query and rewinds to the first
// page. Any in-flight fetch started before the reset is discarded when
// it completes.
func (s *Session) Reset(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.activeQuery = query
	s.cursor = 0
	s.hasMore = true
	s.totalCount = 0
	s.state = stateIdle
	s.lastKey = ""
}

// Retry recovers from a previous error by rewinding the session to the
// first page of the active query. The caller is expected to discard
// anything it rendered from earlier pages, so resuming mid-list would
// duplicate or skip rows. It is a no-op unless the session is in the
// error state.
func (s *Session) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateError {
		return
	}
	s.generation++
	s.cursor = 0
	s.hasMore = true
	s.totalCount = 0
	s.state = stateIdle
	s.lastKey = ""
}

// HasMore reports whether further pages remain.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// TotalCount returns the match count reported by the last page.
func (s *Session) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalCount
}

// NextPage fetches the next page for the active query. It returns a nil
// page without error when there is nothing to do: the list is
// exhausted, a fetch is already in flight, the same page was already
// requested, or the result became stale because Reset ran concurrently.
func (s *Session) NextPage(ctx context.Context) (*search.Page, error) {
	s.mu.Lock()
	if s.state == stateLoading || s.state == stateError || !s.hasMore {
		s.mu.Unlock()
		return nil, nil
	}
	key := fmt.Sprintf("%s|%d", s.activeQuery, s.cursor)
	if key == s.lastKey {
		s.mu.Unlock()
		return nil, nil
	}
	s.state = stateLoading
	s.lastKey = key
	gen := s.generation
	query := s.activeQuery
	cursor := s.cursor
	s.mu.Unlock()

	page, err := s.fetcher.FetchPage(ctx, query, cursor, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil, nil
	}
	if err != nil {
		s.state = stateError
		return nil, err
	}

	s.state = stateIdle
	s.totalCount = page.TotalCount
	s.hasMore = page.HasMore
	if page.NextCursor != nil {
		s.cursor = *page.NextCursor
	} else {
		s.cursor += len(page.Items)
	}
	return page, nil
}
