package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Quotation. convertida y rechazada son terminales.
const (
	QuotationStatusPendiente  = "pendiente"
	QuotationStatusAprobada   = "aprobada"
	QuotationStatusRechazada  = "rechazada"
	QuotationStatusConvertida = "convertida"
)

// Quotation representa una cotización: estimado no vinculante que no toca
// stock. Se mantiene separada de Sale porque una venta sí compromete stock;
// la conversión aprobada→convertida es la única ruta entre ambas.
// Invariante: Total = Subtotal + Tax - Discount.
type Quotation struct {
	ID                string
	Date              time.Time
	ClientID          string
	SellerID          string // usuario vendedor
	Items             []QuotationItem
	Subtotal          decimal.Decimal
	Tax               decimal.Decimal
	Discount          decimal.Decimal
	Total             decimal.Decimal
	ValidUntil        time.Time
	Status            string
	ConvertedToSaleID string // no vacío solo cuando Status = convertida
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// QuotationItem línea de cotización. Subtotal = Quantity * UnitPrice.
type QuotationItem struct {
	ID          string
	QuotationID string
	ProductID   string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// CanTransitionTo informa si la transición de estado es válida.
// pendiente → aprobada|rechazada; aprobada → convertida; nada sale de
// rechazada ni de convertida.
func (q *Quotation) CanTransitionTo(next string) bool {
	switch q.Status {
	case QuotationStatusPendiente:
		return next == QuotationStatusAprobada || next == QuotationStatusRechazada
	case QuotationStatusAprobada:
		return next == QuotationStatusConvertida
	}
	return false
}
