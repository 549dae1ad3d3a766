package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldworks/boeka-cli/internal/adapters/driven/storage/memory"
	"github.com/veldworks/boeka-cli/internal/core/domain"
)

func seededCatalog(t *testing.T) *memory.CatalogStore {
	t.Helper()
	store := memory.NewCatalogStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Service{
		ID: "1", Name: "Haircut", Description: "Wash, cut and style", BasePriceCents: 25000,
	}))
	require.NoError(t, store.Save(ctx, domain.Service{
		ID: "2", Name: "Manicure", BasePriceCents: 18000,
	}))
	return store
}

func TestNewCatalogService(t *testing.T) {
	service := NewCatalogService(memory.NewCatalogStore())

	require.NotNil(t, service)
}

func TestCatalogService_List(t *testing.T) {
	service := NewCatalogService(seededCatalog(t))

	services, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestCatalogService_List_NilStore(t *testing.T) {
	service := NewCatalogService(nil)

	_, err := service.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestCatalogService_Search_MatchesName(t *testing.T) {
	service := NewCatalogService(seededCatalog(t))

	results, err := service.Search(context.Background(), "hair")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)
}

func TestCatalogService_Search_MatchesDescription(t *testing.T) {
	service := NewCatalogService(seededCatalog(t))

	results, err := service.Search(context.Background(), "wash")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)
}

func TestCatalogService_Search_EmptyQueryReturnsAll(t *testing.T) {
	service := NewCatalogService(seededCatalog(t))

	results, err := service.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestCatalogService_Add(t *testing.T) {
	store := memory.NewCatalogStore()
	service := NewCatalogService(store)

	added, err := service.Add(context.Background(), "  Beard Trim  ", "Includes hot towel", 12000)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Beard Trim", added.Name)
	assert.Equal(t, int64(12000), added.BasePriceCents)
	assert.False(t, added.CreatedAt.IsZero())

	stored, err := store.Get(context.Background(), added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.Name, stored.Name)
}

func TestCatalogService_Add_BlankName(t *testing.T) {
	service := NewCatalogService(memory.NewCatalogStore())

	_, err := service.Add(context.Background(), "   ", "", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_Add_NegativePrice(t *testing.T) {
	service := NewCatalogService(memory.NewCatalogStore())

	_, err := service.Add(context.Background(), "Haircut", "", -100)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_Remove(t *testing.T) {
	service := NewCatalogService(seededCatalog(t))

	err := service.Remove(context.Background(), "1")

	require.NoError(t, err)
	_, err = service.Get(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Remove_Unknown(t *testing.T) {
	service := NewCatalogService(seededCatalog(t))

	err := service.Remove(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_ReplaceAll_AssignsMissingIDs(t *testing.T) {
	service := NewCatalogService(memory.NewCatalogStore())

	err := service.ReplaceAll(context.Background(), []domain.Service{
		{Name: "Haircut"},
		{ID: "2", Name: "Manicure"},
	})

	require.NoError(t, err)
	services, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.NotEmpty(t, services[0].ID)
	assert.Equal(t, "2", services[1].ID)
}

func TestCatalogService_ReplaceAll_InvalidEntry(t *testing.T) {
	service := NewCatalogService(memory.NewCatalogStore())

	err := service.ReplaceAll(context.Background(), []domain.Service{{Name: "  "}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_ReplaceAll_DuplicateID(t *testing.T) {
	service := NewCatalogService(memory.NewCatalogStore())

	err := service.ReplaceAll(context.Background(), []domain.Service{
		{ID: "haircut", Name: "Haircut"},
		{ID: "haircut", Name: "Haircut Deluxe"},
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}
