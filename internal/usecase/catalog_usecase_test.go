package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sombateka/internal/domain/entity"
)

func catalogFixture(t *testing.T, now time.Time) *fakeProductRepo {
	t.Helper()
	repo := newFakeProductRepo()

	boostEnd := now.Add(24 * time.Hour)
	expired := now.Add(-24 * time.Hour)

	products := []*entity.Product{
		{ID: "plain-new", Name: "Table en bois", Category: "maison", City: "Brazzaville", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "boosted-new", Name: "Téléphone Android", Category: "electronique", City: "Pointe-Noire", BoostEnd: &boostEnd, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "plain-old", Name: "Chaussures de sport", Category: "mode", City: "Brazzaville", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "boosted-old", Name: "Ordinateur portable", Category: "electronique", City: "Brazzaville", BoostEnd: &boostEnd, CreatedAt: now.Add(-4 * time.Hour)},
		{ID: "expired", Name: "Vieux canapé", Category: "maison", City: "Dolisie", BoostEnd: &expired, CreatedAt: now.Add(-30 * time.Minute)},
	}
	for _, product := range products {
		require.NoError(t, repo.Create(context.Background(), product))
	}
	return repo
}

func ids(products []*entity.Product) []string {
	out := make([]string, len(products))
	for i, product := range products {
		out[i] = product.ID
	}
	return out
}

func TestListProductsBoostedFirst(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := catalogFixture(t, now)

	uc := NewCatalogUseCase(repo)
	uc.now = func() time.Time { return now }

	products, total, err := uc.ListProducts(context.Background(), CatalogFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	// Both live boosts sort before every non-boosted product; within
	// each section newest first. The expired boost ranks as plain.
	assert.Equal(t, []string{"boosted-new", "boosted-old", "expired", "plain-new", "plain-old"}, ids(products))
}

func TestListProductsFilters(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := catalogFixture(t, now)

	uc := NewCatalogUseCase(repo)
	uc.now = func() time.Time { return now }

	products, total, err := uc.ListProducts(context.Background(), CatalogFilter{Category: "electronique"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []string{"boosted-new", "boosted-old"}, ids(products))

	products, total, err = uc.ListProducts(context.Background(), CatalogFilter{City: "Brazzaville"}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"boosted-old", "plain-new", "plain-old"}, ids(products))
}

func TestListProductsPagination(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := catalogFixture(t, now)

	uc := NewCatalogUseCase(repo)
	uc.now = func() time.Time { return now }

	page1, total, err := uc.ListProducts(context.Background(), CatalogFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []string{"boosted-new", "boosted-old"}, ids(page1))

	page3, _, err := uc.ListProducts(context.Background(), CatalogFilter{}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"plain-old"}, ids(page3))

	empty, _, err := uc.ListProducts(context.Background(), CatalogFilter{}, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSearchProducts(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := catalogFixture(t, now)

	uc := NewCatalogUseCase(repo)
	uc.now = func() time.Time { return now }

	products, total, err := uc.SearchProducts(context.Background(), "ORDINATEUR", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []string{"boosted-old"}, ids(products))

	_, total, err = uc.SearchProducts(context.Background(), "introuvable", 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetProductByIDIncrementsViews(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo := catalogFixture(t, now)

	uc := NewCatalogUseCase(repo)

	product, err := uc.GetProductByID(context.Background(), "plain-new")
	require.NoError(t, err)
	assert.Equal(t, "plain-new", product.ID)

	// The counter is bumped off the request path.
	assert.Eventually(t, func() bool {
		stored, err := repo.GetByID(context.Background(), "plain-new")
		return err == nil && stored.Views == 1
	}, time.Second, 10*time.Millisecond)
}
