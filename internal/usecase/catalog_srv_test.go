package usecase

import (
	"context"
	"testing"
	"time"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/dto/request"
	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProduct(t *testing.T, repo *fakeProductRepo, name, category string, price float64, featured bool) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        name,
		Description: name + " description",
		Price:       price,
		Category:    category,
		Stock:       10,
		Featured:    featured,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestListFiltersByCategoryOrderedByName(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	seedProduct(t, repo, "Winter Wool Coat", "jackets", 149.99, false)
	seedProduct(t, repo, "Classic Blazer", "jackets", 89.99, true)
	seedProduct(t, repo, "Silk Scarf", "accessories", 29.99, false)

	products, err := svc.List(ctx, "jackets", "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "jackets", p.Category)
	}
	// name ascending
	assert.Equal(t, "Classic Blazer", products[0].Name)
	assert.Equal(t, "Winter Wool Coat", products[1].Name)
}

func TestListCategorySentinelAll(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop())

	seedProduct(t, repo, "Classic Blazer", "jackets", 89.99, false)
	seedProduct(t, repo, "Silk Scarf", "accessories", 29.99, false)

	products, err := svc.List(context.Background(), "all", "")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestListSearchComposesWithCategory(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop())

	seedProduct(t, repo, "Winter Wool Coat", "jackets", 149.99, false)
	seedProduct(t, repo, "Classic Blazer", "jackets", 89.99, false)
	seedProduct(t, repo, "Winter Gloves", "accessories", 19.99, false)

	// search is case-insensitive and ANDed with the category filter
	products, err := svc.List(context.Background(), "jackets", "wInTeR")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Winter Wool Coat", products[0].Name)
}

func TestGetFeaturedCapped(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop())

	for i := 0; i < 6; i++ {
		seedProduct(t, repo, "Featured "+string(rune('A'+i)), "tops", 10, true)
	}
	seedProduct(t, repo, "Plain Top", "tops", 10, false)

	products, err := svc.GetFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 4)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), zap.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), zap.NewNop())
	price := 10.0

	tests := []struct {
		name string
		req  request.ProductRequest
	}{
		{"missing name", request.ProductRequest{Price: &price, Category: "tops"}},
		{"missing price", request.ProductRequest{Name: "Top", Category: "tops"}},
		{"missing category", request.ProductRequest{Name: "Top", Price: &price}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, utils.ErrValidation)
		})
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	product := seedProduct(t, repo, "Classic Blazer", "jackets", 89.99, false)

	price := 99.99
	updated, err := svc.Update(ctx, product.ID.String(), &request.ProductRequest{
		Name:        "Updated Blazer",
		Description: "new description",
		Price:       &price,
		Category:    "jackets",
		Stock:       5,
		Featured:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated Blazer", updated.Name)

	fetched, err := svc.GetByID(ctx, product.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Updated Blazer", fetched.Name)
	assert.Equal(t, 99.99, fetched.Price)
	assert.Equal(t, 5, fetched.Stock)
	assert.True(t, fetched.Featured)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), zap.NewNop())
	price := 10.0

	_, err := svc.Update(context.Background(), uuid.NewString(), &request.ProductRequest{
		Name:     "Ghost",
		Price:    &price,
		Category: "tops",
	})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	// deleting an unknown id is NotFound
	err := svc.Delete(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// deleting an existing product makes a subsequent lookup NotFound
	product := seedProduct(t, repo, "Silk Scarf", "accessories", 29.99, false)
	require.NoError(t, svc.Delete(ctx, product.ID.String()))

	_, err = svc.GetByID(ctx, product.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
