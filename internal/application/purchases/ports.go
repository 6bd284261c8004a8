package purchases

import (
	"context"

	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta el registro de una compra dentro de una transacción de
// BD: compra e incrementos de stock comprometen juntos.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
