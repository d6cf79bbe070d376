package feed

import (
	"context"
	"log/slog"
	"sync"

	"ozicme/internal/domain/entity"
	"ozicme/internal/domain/search"
	"ozicme/internal/infra/dataset"
)

// LocalSource serves pages from the bundled static dataset. The dataset
// is loaded lazily on first use and kept in memory afterwards.
type LocalSource struct {
	loader *dataset.Loader
	logger *slog.Logger

	once    sync.Once
	stores  []entity.Restaurant
	loadErr error
}

// NewLocalSource returns a LocalSource reading from path.
func NewLocalSource(path string, logger *slog.Logger) *LocalSource {
	return &LocalSource{
		loader: dataset.NewLoader(path),
		logger: logger,
	}
}

func (l *LocalSource) load() ([]entity.Restaurant, error) {
	l.once.Do(func() {
		l.stores, l.loadErr = l.loader.Load()
		if l.loadErr == nil {
			l.logger.Info("loaded static dataset", slog.Int("count", len(l.stores)))
		}
	})
	return l.stores, l.loadErr
}

func (l *LocalSource) FetchPage(_ context.Context, query string, cursor, limit int) (*search.Page, error) {
	stores, err := l.load()
	if err != nil {
		return nil, err
	}
	page := search.Slice(search.Filter(stores, query), cursor, limit)
	return &page, nil
}
