package usecase

import (
	"context"

	"ozicme/internal/domain/entity"
	"ozicme/internal/domain/search"
)

// SearchStoresInput carries the query parameters for a store search.
type SearchStoresInput struct {
	Query  string `json:"query"`
	Cursor int    `json:"cursor"`
	Limit  int    `json:"limit"`
}

// StoreUsecase exposes store search and lookup operations.
type StoreUsecase interface {
	SearchStores(ctx context.Context, input SearchStoresInput) (*search.Page, error)
	GetStore(ctx context.Context, storeID string) (*entity.Restaurant, error)
}
