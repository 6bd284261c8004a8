package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/usecase"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
)

func seedCommission(t *testing.T, store *memory.Store, id, status string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, store.Commissions().Create(&entity.Commission{
		ID: id, SellerID: "seller-1", SaleID: "sale-" + id,
		Amount:     decimal.NewFromInt(30),
		Percentage: decimal.NewFromInt(10),
		Date:       now, Status: status,
		CreatedAt: now, UpdatedAt: now,
	}))
}

func TestMarkPaid_PendienteACompletada(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewCommissionUseCase(store.Commissions())
	seedCommission(t, store, "com-1", entity.CommissionStatusPendiente)

	resp, err := uc.MarkPaid("com-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CommissionStatusCompletada, resp.Status)
}

func TestMarkPaid_YaPagadaEsDefinitivo(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewCommissionUseCase(store.Commissions())
	seedCommission(t, store, "com-1", entity.CommissionStatusPendiente)

	_, err := uc.MarkPaid("com-1")
	require.NoError(t, err)

	_, err = uc.MarkPaid("com-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"pendiente→completada es de una sola vía")
}

func TestMarkPaid_Inexistente(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewCommissionUseCase(store.Commissions())

	_, err := uc.MarkPaid("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommissionList_FiltraPorEstado(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewCommissionUseCase(store.Commissions())
	seedCommission(t, store, "com-1", entity.CommissionStatusPendiente)
	seedCommission(t, store, "com-2", entity.CommissionStatusCompletada)
	seedCommission(t, store, "com-3", entity.CommissionStatusPendiente)

	pendientes, err := uc.List(entity.CommissionStatusPendiente, 20, 0)
	require.NoError(t, err)
	assert.Len(t, pendientes.Items, 2)

	todas, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, todas.Items, 3)
}
