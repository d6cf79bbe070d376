package dataset

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ozicme/config"
	"ozicme/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, content string) repository.StoreRepository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Dataset.Path = writeDataset(t, "stores.json", content)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := NewStoreRepository(cfg, logger)
	require.NoError(t, err)

	return repo
}

func TestStoreRepository_All(t *testing.T) {
	repo := newTestRepository(t, `[
		{"id": "a", "name": "국밥집"},
		{"name": "이름만 있는 집"}
	]`)

	stores, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "a", stores[0].ID)
	assert.Equal(t, "store-2", stores[1].ID)
}

func TestStoreRepository_FindByID(t *testing.T) {
	repo := newTestRepository(t, `[{"id": "a", "name": "국밥집"}]`)

	store, err := repo.FindByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "국밥집", store.Name)

	_, err = repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_DuplicateIDsKeepFirst(t *testing.T) {
	repo := newTestRepository(t, `[
		{"id": "a", "name": "첫번째"},
		{"id": "a", "name": "두번째"}
	]`)

	store, err := repo.FindByID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "첫번째", store.Name)
}

func TestStoreRepository_LoadFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Dataset.Path = writeDataset(t, "stores.json", `{"not": "an array"}`)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewStoreRepository(cfg, logger)
	assert.Error(t, err)
}
