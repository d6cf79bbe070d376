package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ozicme/internal/feed"

	"github.com/pkg/errors"
)

const defaultFetchTimeout = 8 * time.Second

type searchOptions struct {
	apiBaseURL   string
	dataPath     string
	query        string
	limit        int
	fetchTimeout time.Duration
}

// runSearch pages through the store feed until it is exhausted,
// printing one line per store. When an API base URL is given the remote
// source is tried first with the static dataset as fallback; otherwise
// only the static dataset is used.
func runSearch(ctx context.Context, opts searchOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if opts.fetchTimeout <= 0 {
		opts.fetchTimeout = defaultFetchTimeout
	}

	local := feed.NewLocalSource(opts.dataPath, logger)
	var fetcher feed.PageFetcher = local
	if opts.apiBaseURL != "" {
		remote := feed.NewRemoteSource(opts.apiBaseURL, opts.fetchTimeout, logger)
		fetcher = feed.NewCoordinator(remote, local, logger)
	}

	session := feed.NewSession(fetcher, opts.limit)
	session.Reset(opts.query)

	shown := 0
	for session.HasMore() {
		page, err := session.NextPage(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to fetch page")
		}
		if page == nil {
			break
		}
		for _, store := range page.Items {
			shown++
			fmt.Printf("%3d. %s  %s  %s\n", shown, store.Name, store.Region.Sigungu, store.Category)
		}
	}

	fmt.Printf("%d of %d stores\n", shown, session.TotalCount())

	return nil
}
