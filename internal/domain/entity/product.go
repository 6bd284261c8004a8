package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Stock solo lo mutan la
// creación de ventas (resta) y la recepción de compras (suma); nunca una
// cotización ni una edición directa del producto.
type Product struct {
	ID            string
	Code          string // único
	Name          string
	CategoryID    string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Stock         decimal.Decimal
	MinStock      decimal.Decimal // umbral de alerta de stock mínimo
	UnitMeasure   string
	SupplierID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
