package quotation_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/quotation"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
)

const (
	testClientID  = "client-1"
	testSellerID  = "seller-1"
	testProductID = "prod-1"
)

// newFixture arma un store con un cliente, un vendedor con 10% de comisión y
// un producto con 10 unidades de stock a $100.
func newFixture(t *testing.T) (*quotation.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()

	require.NoError(t, store.Clients().Create(&entity.Client{
		ID: testClientID, Name: "Cliente Uno", Document: "900123456",
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.Users().Create(&entity.User{
		ID: testSellerID, Name: "Vendedor Uno", Email: "vendedor@test.local",
		RoleID: "role-vendedor", Status: entity.UserStatusActive,
		CommissionPct: decimal.NewFromInt(10),
		CreatedAt:     now, UpdatedAt: now,
	}))
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: testProductID, Code: "P-001", Name: "Producto Uno",
		SalePrice: decimal.NewFromInt(100),
		Stock:     decimal.NewFromInt(10),
		CreatedAt: now, UpdatedAt: now,
	}))

	uc := quotation.NewUseCase(store, store.Quotations(), store.Clients(), store.Products(), store.Users())
	return uc, store
}

func createApproved(t *testing.T, uc *quotation.UseCase, qty int64) string {
	t.Helper()
	created, err := uc.Create(testSellerID, dto.CreateQuotationRequest{
		ClientID: testClientID,
		Items: []dto.QuotationItemRequest{
			{ProductID: testProductID, Quantity: decimal.NewFromInt(qty)},
		},
	})
	require.NoError(t, err)
	_, err = uc.Approve(created.ID)
	require.NoError(t, err)
	return created.ID
}

func TestCreate_QuedaPendienteYNoTocaStock(t *testing.T) {
	uc, store := newFixture(t)

	resp, err := uc.Create(testSellerID, dto.CreateQuotationRequest{
		ClientID: testClientID,
		Items: []dto.QuotationItemRequest{
			{ProductID: testProductID, Quantity: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.QuotationStatusPendiente, resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(300)), "subtotal = 3 * 100")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(300)))
	assert.False(t, resp.ValidUntil.IsZero(), "debe asignarse vigencia por defecto")

	product, err := store.Products().GetByID(testProductID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(10)),
		"cotizar no descuenta stock")
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(testSellerID, dto.CreateQuotationRequest{
		ClientID: "no-existe",
		Items: []dto.QuotationItemRequest{
			{ProductID: testProductID, Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SinLineas(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(testSellerID, dto.CreateQuotationRequest{ClientID: testClientID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReject_EsTerminal(t *testing.T) {
	uc, _ := newFixture(t)

	created, err := uc.Create(testSellerID, dto.CreateQuotationRequest{
		ClientID: testClientID,
		Items: []dto.QuotationItemRequest{
			{ProductID: testProductID, Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	rejected, err := uc.Reject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusRechazada, rejected.Status)

	_, err = uc.Approve(created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "rechazada no admite transiciones")
}

func TestConvert_CreaVentaDescuentaStockYGeneraComision(t *testing.T) {
	uc, store := newFixture(t)
	id := createApproved(t, uc, 3)

	resp, err := uc.Convert(context.Background(), id)
	require.NoError(t, err)
	require.NotEmpty(t, resp.SaleID)
	assert.Equal(t, id, resp.QuotationID)

	// Venta completada con los totales de la cotización.
	sale, err := store.Sales().GetByID(resp.SaleID)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, entity.SaleStatusCompletada, sale.Status)
	assert.Equal(t, entity.PaymentEfectivo, sale.PaymentMethod)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(300)))
	assert.Len(t, sale.Items, 1)

	// Stock descontado: 10 - 3 = 7.
	product, err := store.Products().GetByID(testProductID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(7)))

	// Cotización convertida con referencia a la venta.
	q, err := store.Quotations().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusConvertida, q.Status)
	assert.Equal(t, resp.SaleID, q.ConvertedToSaleID)

	// Una comisión pendiente por el 10% del total: 30.00.
	commissions, err := store.Commissions().List("", 100, 0)
	require.NoError(t, err)
	require.Len(t, commissions, 1)
	assert.Equal(t, resp.SaleID, commissions[0].SaleID)
	assert.Equal(t, testSellerID, commissions[0].SellerID)
	assert.Equal(t, entity.CommissionStatusPendiente, commissions[0].Status)
	assert.True(t, commissions[0].Amount.Equal(decimal.RequireFromString("30")),
		"comisión = 300 * 10%% = 30, fue %s", commissions[0].Amount)
}

func TestConvert_DobleConversionFallaYDejaUnaSolaVenta(t *testing.T) {
	uc, store := newFixture(t)
	id := createApproved(t, uc, 2)

	_, err := uc.Convert(context.Background(), id)
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "la segunda conversión debe fallar")

	salesList, err := store.Sales().List(100, 0)
	require.NoError(t, err)
	assert.Len(t, salesList, 1, "debe existir exactamente una venta")

	product, err := store.Products().GetByID(testProductID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(8)),
		"el stock solo se descuenta una vez")
}

func TestConvert_PendienteNoSeConvierte(t *testing.T) {
	uc, _ := newFixture(t)

	created, err := uc.Create(testSellerID, dto.CreateQuotationRequest{
		ClientID: testClientID,
		Items: []dto.QuotationItemRequest{
			{ProductID: testProductID, Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestConvert_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, store := newFixture(t)
	id := createApproved(t, uc, 15) // stock disponible: 10

	_, err := uc.Convert(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada quedó a medias: sin venta, sin comisión, stock intacto y la
	// cotización sigue aprobada (reconvertible tras reponer stock).
	salesList, err := store.Sales().List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, salesList)

	commissions, err := store.Commissions().List("", 100, 0)
	require.NoError(t, err)
	assert.Empty(t, commissions)

	product, err := store.Products().GetByID(testProductID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(10)))

	q, err := store.Quotations().GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusAprobada, q.Status)
	assert.Empty(t, q.ConvertedToSaleID)
}

func TestConvert_Inexistente(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Convert(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
