package memory

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/domain"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/pkg/errors"
)

func float(v float64) *float64 { return &v }

func seededRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos := NewRepositories(zap.NewNop())
	require.NoError(t, Seed(context.Background(), repos))
	return repos
}

func TestProductListSeeded(t *testing.T) {
	repos := seededRepos(t)

	products, err := repos.Product.List(context.Background(), repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 16)
}

func TestProductListFilters(t *testing.T) {
	repos := seededRepos(t)
	ctx := context.Background()

	t.Run("category", func(t *testing.T) {
		products, err := repos.Product.List(ctx, repository.ProductFilter{Category: "furniture"})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, "Furniture", p.Category)
		}
	})

	t.Run("price range", func(t *testing.T) {
		products, err := repos.Product.List(ctx, repository.ProductFilter{
			MinPrice: float(100),
			MaxPrice: float(500),
		})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.GreaterOrEqual(t, parsePrice(t, p.Price), 100.0)
			assert.LessOrEqual(t, parsePrice(t, p.Price), 500.0)
		}
	})

	t.Run("search matches name or description", func(t *testing.T) {
		products, err := repos.Product.List(ctx, repository.ProductFilter{Search: "sectional"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Modern L-Shaped Sectional Sofa", products[0].Name)
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		all, err := repos.Product.List(ctx, repository.ProductFilter{Category: "electronics"})
		require.NoError(t, err)

		narrowed, err := repos.Product.List(ctx, repository.ProductFilter{
			Category: "electronics",
			Brand:    "Apple",
		})
		require.NoError(t, err)

		assert.Less(t, len(narrowed), len(all))
		for _, p := range narrowed {
			assert.Equal(t, "Apple", p.Brand)
			assert.Equal(t, "Electronics", p.Category)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		products, err := repos.Product.List(ctx, repository.ProductFilter{Brand: "NoSuchBrand"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductCreateDefaults(t *testing.T) {
	repos := NewRepositories(zap.NewNop())
	ctx := context.Background()

	created, err := repos.Product.Create(ctx, domain.NewProduct{
		Name:     "Bare Minimum Lamp",
		Brand:    "TestBrand",
		Price:    "49.99",
		Category: "Lighting",
		ImageURL: "https://example.com/lamp.jpg",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "0", created.Rating)
	assert.True(t, created.InStock)
	assert.NotNil(t, created.AdditionalImages)
	assert.NotNil(t, created.Specifications)

	fetched, err := repos.Product.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestProductGetUnknown(t *testing.T) {
	repos := NewRepositories(zap.NewNop())

	_, err := repos.Product.GetByID(context.Background(), "missing")
	var notFound *errors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Resource)
}

func parsePrice(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}
