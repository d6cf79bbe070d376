// Package repository defines the interfaces for the data access layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ozicme/internal/domain/entity"
	"ozicme/internal/errors"
)

// ErrStoreNotFound is returned when no store matches the requested id.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines read access to the normalized restaurant dataset.
// The backing set is loaded once and is read-only afterwards; implementations
// must never mutate records handed out to callers.
type StoreRepository interface {
	// All returns every normalized restaurant in dataset order.
	All(ctx context.Context) ([]entity.Restaurant, error)

	// FindByID retrieves a single restaurant by its canonical id.
	// Returns ErrStoreNotFound when the id does not exist.
	FindByID(ctx context.Context, id string) (*entity.Restaurant, error)
}
