package feed

import (
	"context"
	"fmt"
	"testing"

	"ozicme/internal/domain/entity"
	"ozicme/internal/domain/search"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceFetcher serves pages from an in-memory dataset, counting calls.
type sliceFetcher struct {
	stores []entity.Restaurant
	calls  int
	err    error
}

func (f *sliceFetcher) FetchPage(_ context.Context, query string, cursor, limit int) (*search.Page, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	page := search.Slice(search.Filter(f.stores, query), cursor, limit)

	return &page, nil
}

func testStores(n int) []entity.Restaurant {
	records := make([]entity.Restaurant, n)
	for i := range records {
		records[i] = entity.Restaurant{
			ID:         fmt.Sprintf("store-%d", i+1),
			SearchText: fmt.Sprintf("매장 %d", i+1),
		}
	}

	return records
}

func TestSession_PagesToExhaustion(t *testing.T) {
	fetcher := &sliceFetcher{stores: testStores(45)}
	session := NewSession(fetcher, 20)
	session.Reset("")

	var seen []string
	for session.HasMore() {
		page, err := session.NextPage(context.Background())
		require.NoError(t, err)
		require.NotNil(t, page)
		for _, item := range page.Items {
			seen = append(seen, item.ID)
		}
	}

	require.Len(t, seen, 45)
	assert.Equal(t, "store-1", seen[0])
	assert.Equal(t, "store-45", seen[44])
	assert.Equal(t, 3, fetcher.calls)
	assert.Equal(t, 45, session.TotalCount())

	// Exhausted session refuses further work.
	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 3, fetcher.calls)
}

func TestSession_DuplicateRequestDropped(t *testing.T) {
	fetcher := &sliceFetcher{stores: testStores(5)}
	session := NewSession(fetcher, 20)
	session.Reset("")

	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.False(t, session.HasMore())

	// Same (query, cursor) again: no fetch, no page.
	page, err = session.NextPage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, fetcher.calls)
}

func TestSession_ErrorThenRetry(t *testing.T) {
	fetcher := &sliceFetcher{stores: testStores(5), err: errors.New("boom")}
	session := NewSession(fetcher, 20)
	session.Reset("")

	_, err := session.NextPage(context.Background())
	require.Error(t, err)

	// Error state blocks further fetches until Retry.
	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, fetcher.calls)

	fetcher.err = nil
	session.Retry()

	page, err = session.NextPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Len(t, page.Items, 5)
}

// flakyFetcher fails exactly one fetch by ordinal and serves pages from
// the in-memory dataset otherwise.
type flakyFetcher struct {
	stores []entity.Restaurant
	calls  int
	failOn int
}

func (f *flakyFetcher) FetchPage(_ context.Context, query string, cursor, limit int) (*search.Page, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, errors.New("boom")
	}
	page := search.Slice(search.Filter(f.stores, query), cursor, limit)

	return &page, nil
}

func TestSession_RetryAfterMidListErrorRestartsFromFirstPage(t *testing.T) {
	fetcher := &flakyFetcher{stores: testStores(45), failOn: 2}
	session := NewSession(fetcher, 20)
	session.Reset("")

	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 20)
	assert.Equal(t, "store-1", page.Items[0].ID)

	// Second page fails mid-list.
	_, err = session.NextPage(context.Background())
	require.Error(t, err)

	session.Retry()
	assert.True(t, session.HasMore())

	// Recovery starts over at the first item, not at the failed cursor.
	var seen []string
	for session.HasMore() {
		page, err := session.NextPage(context.Background())
		require.NoError(t, err)
		require.NotNil(t, page)
		for _, item := range page.Items {
			seen = append(seen, item.ID)
		}
	}

	require.Len(t, seen, 45)
	assert.Equal(t, "store-1", seen[0])
	assert.Equal(t, "store-21", seen[20])
	assert.Equal(t, "store-45", seen[44])
	assert.Equal(t, 45, session.TotalCount())
}

func TestSession_ResetSwitchesQuery(t *testing.T) {
	stores := testStores(5)
	stores[2].SearchText = "서울 국수"
	fetcher := &sliceFetcher{stores: stores}
	session := NewSession(fetcher, 20)
	session.Reset("")

	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 5)

	session.Reset("국수")
	assert.True(t, session.HasMore())

	page, err = session.NextPage(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "store-3", page.Items[0].ID)
	assert.Equal(t, 1, session.TotalCount())
}

// resetOnFetch resets the session during the in-flight fetch, simulating a
// user changing the query while a page request is outstanding.
type resetOnFetch struct {
	inner   PageFetcher
	session *Session
	query   string
	fired   bool
}

func (f *resetOnFetch) FetchPage(ctx context.Context, query string, cursor, limit int) (*search.Page, error) {
	page, err := f.inner.FetchPage(ctx, query, cursor, limit)
	if !f.fired {
		f.fired = true
		f.session.Reset(f.query)
	}

	return page, err
}

func TestSession_StaleResultDroppedAfterReset(t *testing.T) {
	fetcher := &sliceFetcher{stores: testStores(45)}
	wrapper := &resetOnFetch{inner: fetcher, query: "매장"}
	session := NewSession(wrapper, 20)
	wrapper.session = session
	session.Reset("")

	// The fetch completes after Reset bumped the generation: its result
	// must be discarded without touching the cursor.
	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)

	// The next fetch serves the new query from the first page.
	page, err = session.NextPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Len(t, page.Items, 20)
	assert.Equal(t, "store-1", page.Items[0].ID)
}

func TestSession_DefaultPageSize(t *testing.T) {
	fetcher := &sliceFetcher{stores: testStores(25)}
	session := NewSession(fetcher, 0)
	session.Reset("")

	page, err := session.NextPage(context.Background())
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Len(t, page.Items, 20)
}
