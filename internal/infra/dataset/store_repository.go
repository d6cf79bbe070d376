package dataset

import (
	"context"
	"log/slog"

	"ozicme/config"
	"ozicme/internal/domain/entity"
	"ozicme/internal/domain/repository"
	"ozicme/internal/errors"
)

// storeRepository is the in-memory dataset cache behind the stores API. The
// record set is built once at construction (server startup) and is read-only
// afterwards, so readers need no synchronization.
type storeRepository struct {
	logger *slog.Logger
	stores []entity.Restaurant
	byID   map[string]int
}

// NewStoreRepository loads and normalizes the configured dataset file into an
// immutable in-memory repository.
func NewStoreRepository(cfg *config.Config, logger *slog.Logger) (repository.StoreRepository, error) {
	stores, err := NewLoader(cfg.Dataset.Path).Load()
	if err != nil {
		return nil, errors.Wrap(err, "load store dataset")
	}

	byID := make(map[string]int, len(stores))
	for i, store := range stores {
		if _, exists := byID[store.ID]; exists {
			logger.Warn("duplicate store id in dataset, keeping first occurrence",
				slog.String("id", store.ID))

			continue
		}
		byID[store.ID] = i
	}

	logger.Info("store dataset loaded",
		slog.String("path", cfg.Dataset.Path),
		slog.Int("count", len(stores)))

	return &storeRepository{
		logger: logger,
		stores: stores,
		byID:   byID,
	}, nil
}

func (r *storeRepository) All(_ context.Context) ([]entity.Restaurant, error) {
	return r.stores, nil
}

func (r *storeRepository) FindByID(_ context.Context, id string) (*entity.Restaurant, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrStoreNotFound)
	}

	store := r.stores[i]

	return &store, nil
}
