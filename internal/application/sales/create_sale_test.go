package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/sales"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
)

const (
	clientID  = "client-1"
	sellerID  = "seller-1"
	productID = "prod-1"
)

func newFixture(t *testing.T) (*sales.CreateSaleUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()

	require.NoError(t, store.Clients().Create(&entity.Client{
		ID: clientID, Name: "Cliente Uno", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.Users().Create(&entity.User{
		ID: sellerID, Name: "Vendedor Uno", Email: "vendedor@test.local",
		RoleID: "role-vendedor", Status: entity.UserStatusActive,
		CommissionPct: decimal.NewFromInt(5),
		CreatedAt:     now, UpdatedAt: now,
	}))
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: productID, Code: "P-001", Name: "Producto Uno",
		SalePrice: decimal.NewFromInt(50),
		Stock:     decimal.NewFromInt(20),
		CreatedAt: now, UpdatedAt: now,
	}))

	uc := sales.NewCreateSaleUseCase(store, store.Clients(), store.Users(), store.Products(), store.Sales())
	return uc, store
}

func TestCreateSale_DescuentaStockYGeneraComision(t *testing.T) {
	uc, store := newFixture(t)

	resp, err := uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		ClientID: clientID,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(4)},
		},
		PaymentMethod: entity.PaymentTransferencia,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCompletada, resp.Status)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal = 4 * 50")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(200)))

	product, err := store.Products().GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(16)), "stock 20 - 4")

	commissions, err := store.Commissions().List("", 100, 0)
	require.NoError(t, err)
	require.Len(t, commissions, 1)
	assert.Equal(t, resp.ID, commissions[0].SaleID)
	assert.Equal(t, entity.CommissionStatusPendiente, commissions[0].Status)
	assert.True(t, commissions[0].Amount.Equal(decimal.NewFromInt(10)),
		"comisión 5%% de 200 = 10, fue %s", commissions[0].Amount)
}

func TestCreateSale_RespetaImpuestoYDescuento(t *testing.T) {
	uc, _ := newFixture(t)

	resp, err := uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		ClientID: clientID,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(2)},
		},
		Tax:           decimal.NewFromInt(19),
		Discount:      decimal.NewFromInt(9),
		PaymentMethod: entity.PaymentEfectivo,
	})
	require.NoError(t, err)

	// total = 100 + 19 - 9
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(110)))
}

func TestCreateSale_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, store := newFixture(t)

	_, err := uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		ClientID: clientID,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(25)}, // stock: 20
		},
		PaymentMethod: entity.PaymentEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	salesList, err := store.Sales().List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, salesList, "no debe quedar venta a medias")

	product, err := store.Products().GetByID(productID)
	require.NoError(t, err)
	assert.True(t, product.Stock.Equal(decimal.NewFromInt(20)), "stock intacto")
}

func TestCreateSale_MedioDePagoInvalido(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		ClientID: clientID,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(1)},
		},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// clientesCaidos simula un repositorio cuya consulta falla por infraestructura.
type clientesCaidos struct {
	repository.ClientRepository
	err error
}

func (f clientesCaidos) GetByID(id string) (*entity.Client, error) { return nil, f.err }

func TestCreateSale_FalloDeRepositorioNoEsNotFound(t *testing.T) {
	_, store := newFixture(t)
	errInfra := errors.New("conexión rechazada")
	uc := sales.NewCreateSaleUseCase(store,
		clientesCaidos{err: errInfra}, store.Users(), store.Products(), store.Sales())

	_, err := uc.CreateSale(context.Background(), sellerID, dto.CreateSaleRequest{
		ClientID: clientID,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(1)},
		},
		PaymentMethod: entity.PaymentEfectivo,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errInfra, "el error de infraestructura se propaga tal cual")
	assert.NotErrorIs(t, err, domain.ErrNotFound, "una BD caída no es un cliente inexistente")
}

func TestCreateSale_VendedorSinComisionGeneraComisionCero(t *testing.T) {
	uc, store := newFixture(t)
	now := time.Now()
	require.NoError(t, store.Users().Create(&entity.User{
		ID: "seller-0", Name: "Sin Comisión", Email: "cero@test.local",
		RoleID: "role-vendedor", Status: entity.UserStatusActive,
		CommissionPct: decimal.Zero,
		CreatedAt:     now, UpdatedAt: now,
	}))

	resp, err := uc.CreateSale(context.Background(), "seller-0", dto.CreateSaleRequest{
		ClientID: clientID,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: decimal.NewFromInt(1)},
		},
		PaymentMethod: entity.PaymentQR,
	})
	require.NoError(t, err)

	commissions, err := store.Commissions().List("", 100, 0)
	require.NoError(t, err)
	require.Len(t, commissions, 1, "la comisión se crea igual, con monto cero")
	assert.Equal(t, resp.ID, commissions[0].SaleID)
	assert.True(t, commissions[0].Amount.IsZero())
}
