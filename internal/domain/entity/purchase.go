package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Purchase.
const (
	PurchaseStatusRecibida  = "recibida"
	PurchaseStatusPendiente = "pendiente"
)

// Purchase representa una compra a proveedor. Su recepción incrementa el
// stock de cada producto (la contraparte del descuento de Sale).
type Purchase struct {
	ID         string
	Date       time.Time
	SupplierID string
	UserID     string
	Items      []PurchaseItem
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseItem línea de compra. Subtotal = Quantity * UnitCost.
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	Subtotal   decimal.Decimal
}
