package purchases_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/purchases"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
)

const (
	supplierID = "supplier-1"
	userID     = "user-1"
	productID  = "prod-1"
)

func newFixture(t *testing.T) (*purchases.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()

	require.NoError(t, store.Suppliers().Create(&entity.Supplier{
		ID: supplierID, Name: "Proveedor Uno", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: productID, Code: "P-001", Name: "Producto Uno",
		PurchasePrice: decimal.NewFromInt(30),
		SalePrice:     decimal.NewFromInt(50),
		Stock:         decimal.NewFromInt(5),
		CreatedAt:     now, UpdatedAt: now,
	}))

	uc := purchases.NewUseCase(store, store.Suppliers(), store.Products(), store.Purchases())
	return uc, store
}

func TestCreate_IncrementaStock(t *testing.T) {
	uc, store := newFixture(t)

	resp, err := uc.Create(context.Background(), userID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseStatusRecibida, resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(300)),
		"subtotal = 10 * costo de compra 30")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(300)))

	product, err := store.Products().GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(15)), "stock 5 + 10")
}

func TestCreate_CostoExplicitoYTax(t *testing.T) {
	uc, _ := newFixture(t)

	resp, err := uc.Create(context.Background(), userID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(40)},
		},
		Tax: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	// total = 2*40 + 15
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(95)))
}

func TestCreate_ProveedorInexistente(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(context.Background(), userID, dto.CreatePurchaseRequest{
		SupplierID: "no-existe",
		Items: []dto.PurchaseItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ProductoInexistenteNoDejaCompraAMedias(t *testing.T) {
	uc, store := newFixture(t)

	_, err := uc.Create(context.Background(), userID, dto.CreatePurchaseRequest{
		SupplierID: supplierID,
		Items: []dto.PurchaseItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(3)},
			{ProductID: "no-existe", Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La primera línea también se revierte.
	product, err := store.Products().GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(5)), "stock intacto")

	list, err := store.Purchases().List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
