package feed

import (
	"context"
	"log/slog"
	"sync"

	"ozicme/internal/domain/search"
)

// Coordinator tries the remote API first and switches to the local
// dataset when a remote fetch fails. The switch is permanent for the
// lifetime of the Coordinator so pagination stays consistent within
// one data source.
type Coordinator struct {
	remote PageFetcher
	local  PageFetcher
	logger *slog.Logger

	mu            sync.Mutex
	usingFallback bool
}

// NewCoordinator returns a Coordinator over the two sources.
func NewCoordinator(remote, local PageFetcher, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		remote: remote,
		local:  local,
		logger: logger,
	}
}

func (c *Coordinator) fallbackActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usingFallback
}

func (c *Coordinator) activateFallback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usingFallback = true
}

func (c *Coordinator) FetchPage(ctx context.Context, query string, cursor, limit int) (*search.Page, error) {
	if !c.fallbackActive() {
		page, err := c.remote.FetchPage(ctx, query, cursor, limit)
		if err == nil {
			return page, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		c.logger.Warn("remote store api unavailable, switching to static dataset",
			slog.Any("error", err))
		c.activateFallback()
	}
	return c.local.FetchPage(ctx, query, cursor, limit)
}
