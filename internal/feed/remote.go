package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ozicme/internal/domain/entity"
	"ozicme/internal/domain/search"
	"ozicme/internal/errors"
)

// RemoteSource fetches pages from the store API over HTTP. Every fetch
// runs under its own timeout so a hung API cannot stall the feed.
type RemoteSource struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewRemoteSource returns a RemoteSource targeting baseURL.
func NewRemoteSource(baseURL string, timeout time.Duration, logger *slog.Logger) *RemoteSource {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &RemoteSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		timeout: timeout,
		logger:  logger,
	}
}

// remotePage mirrors the API response. Items is a pointer so a payload
// that omits the field entirely is distinguishable from an empty page.
type remotePage struct {
	Items      *[]entity.Restaurant `json:"items"`
	NextCursor *int                 `json:"nextCursor"`
	HasMore    bool                 `json:"hasMore"`
	TotalCount int                  `json:"totalCount"`
	DataReady  *bool                `json:"dataReady"`
}

func (r *RemoteSource) FetchPage(ctx context.Context, query string, cursor, limit int) (*search.Page, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	params.Set("cursor", strconv.Itoa(cursor))
	params.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/api/stores?%s", r.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build store request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stores")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("store api returned status %d", resp.StatusCode)
	}

	var payload remotePage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode store response")
	}
	if payload.DataReady != nil && !*payload.DataReady {
		return nil, errors.New("store api data not ready")
	}
	if payload.Items == nil {
		return nil, errors.New("store api response missing items")
	}

	return &search.Page{
		Items:      *payload.Items,
		NextCursor: payload.NextCursor,
		HasMore:    payload.HasMore,
		TotalCount: payload.TotalCount,
	}, nil
}
