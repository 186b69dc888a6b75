package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
)

func TestAddProduct_RoundTripThroughListen(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.productRepo, env.notifier)
	ctx := context.Background()

	var last []*model.Product
	unsubscribe, err := svc.ListenToProducts(ctx, func(products []*model.Product) {
		last = products
	})
	require.NoError(t, err)
	defer unsubscribe()

	created, err := svc.AddProduct(ctx, &dto.CreateProductRequest{
		Name:        "Shirt",
		Price:       150,
		Stock:       10,
		IsActive:    true,
		Category:    "apparel",
		Description: "soft cotton",
		ImageURL:    "https://img.example.com/shirt.png",
		BuyLink:     "https://shop.example.com/shirt",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	require.Len(t, last, 1)
	got := last[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Shirt", got.Name)
	assert.Equal(t, int64(150), got.Price)
	assert.Equal(t, 10, got.Stock)
	assert.Equal(t, 10, got.MaxStock)
	assert.True(t, got.IsActive)
	assert.Equal(t, "apparel", got.Category)
	assert.Equal(t, "soft cotton", got.Description)
	assert.Equal(t, "https://img.example.com/shirt.png", got.ImageURL)
	assert.Equal(t, "https://shop.example.com/shirt", got.BuyLink)
}

func TestUpdateProduct_PartialMerge(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.productRepo, env.notifier)
	ctx := context.Background()

	created, err := svc.AddProduct(ctx, &dto.CreateProductRequest{
		Name: "Shirt", Price: 150, Stock: 10, IsActive: true,
	})
	require.NoError(t, err)

	newPrice := int64(199)
	inactive := false
	require.NoError(t, svc.UpdateProduct(ctx, created.ID, &dto.UpdateProductRequest{
		Price:    &newPrice,
		IsActive: &inactive,
	}))

	got, err := env.productRepo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(199), got.Price)
	assert.False(t, got.IsActive)
	assert.Equal(t, "Shirt", got.Name)
	assert.Equal(t, 10, got.Stock)
	assert.Equal(t, 10, got.MaxStock) // frozen at creation
}

func TestUpdateProduct_EmptyRequestIsNoop(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.productRepo, env.notifier)

	assert.NoError(t, svc.UpdateProduct(context.Background(), "whatever", &dto.UpdateProductRequest{}))
}

func TestDeleteProduct_KeepsPurchaseRecords(t *testing.T) {
	env := newTestEnv(t)
	catalog := NewCatalogService(env.productRepo, env.notifier)
	purchases := env.purchaseService()
	ctx := context.Background()

	seedUser(t, env, "u1")
	created, err := catalog.AddProduct(ctx, &dto.CreateProductRequest{
		Name: "Shirt", Price: 150, Stock: 10, IsActive: true,
	})
	require.NoError(t, err)

	purchaseID, err := purchases.CreatePurchase(ctx, "u1", &dto.PurchaseItem{
		Type:        model.PurchaseTypeProduct,
		ProductName: created.Name,
		ProductID:   created.ID,
	})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	// the ledger keeps its denormalized snapshot
	got, err := env.purchaseRepo.FindByID(ctx, purchaseID)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", got.ProductName)

	// approving now is harmless: the stock decrement misses, status still moves
	require.NoError(t, purchases.UpdatePurchaseStatus(ctx, purchaseID, model.PurchaseStatusSuccess, ""))
	got, err = env.purchaseRepo.FindByID(ctx, purchaseID)
	require.NoError(t, err)
	assert.Equal(t, model.PurchaseStatusSuccess, got.Status)
}
