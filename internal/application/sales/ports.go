package sales

import (
	"context"

	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta la creación de una venta dentro de una transacción de BD,
// pasando repositorios atados a esa tx. Venta, descuentos de stock y
// comisión comprometen juntos o no comprometen.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		commissionRepo repository.CommissionRepository,
	) error) error
}
