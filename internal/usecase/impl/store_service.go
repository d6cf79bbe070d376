package impl

import (
	"context"
	stderrors "errors"
	"log/slog"

	deliverycontext "ozicme/internal/delivery/context"
	"ozicme/internal/domain/entity"
	domainerrors "ozicme/internal/domain/errors"
	"ozicme/internal/domain/repository"
	"ozicme/internal/domain/search"
	"ozicme/internal/errors"
	"ozicme/internal/usecase"
)

// StoreService implements usecase.StoreUsecase on top of a StoreRepository.
type StoreService struct {
	repo         repository.StoreRepository
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

// NewStoreService returns a StoreService with the given paging limits.
func NewStoreService(repo repository.StoreRepository, logger *slog.Logger, defaultLimit, maxLimit int) *StoreService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit <= 0 {
		maxLimit = 50
	}
	return &StoreService{
		repo:         repo,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (s *StoreService) SearchStores(ctx context.Context, input usecase.SearchStoresInput) (*search.Page, error) {
	stores, err := s.repo.All(ctx)
	if err != nil {
		return nil, domainerrors.ErrDatasetLoadFailed.WithDetails(err.Error())
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	cursor := input.Cursor
	if cursor < 0 {
		cursor = 0
	}

	matched := search.Filter(stores, input.Query)
	page := search.Slice(matched, cursor, limit)

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Debug("searched stores",
		slog.String("query", input.Query),
		slog.Int("cursor", cursor),
		slog.Int("matched", page.TotalCount),
	)

	return &page, nil
}

func (s *StoreService) GetStore(ctx context.Context, storeID string) (*entity.Restaurant, error) {
	store, err := s.repo.FindByID(ctx, storeID)
	if err != nil {
		if stderrors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WithDetails("storeId=" + storeID)
		}
		return nil, errors.Wrap(err, "failed to find store")
	}
	return store, nil
}
