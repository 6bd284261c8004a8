package quotation

import (
	"context"

	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta la conversión cotización→venta dentro de una transacción
// de BD. El repositorio de cotizaciones que recibe el callback permite
// GetForUpdate sobre la misma tx, de modo que dos conversiones concurrentes
// se serializan y la segunda ve el estado ya convertido.
type TxRunner interface {
	RunConversion(ctx context.Context, fn func(
		quotationRepo repository.QuotationRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		commissionRepo repository.CommissionRepository,
	) error) error
}
