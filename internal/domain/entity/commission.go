package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Commission. La transición pendiente→completada es irreversible.
const (
	CommissionStatusPendiente  = "pendiente"
	CommissionStatusCompletada = "completada"
)

// Commission representa la comisión de un vendedor por una venta.
// Se crea junto con la venta (una por venta) con el porcentaje del
// vendedor, en estado pendiente.
type Commission struct {
	ID         string
	SellerID   string
	SaleID     string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	Date       time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
