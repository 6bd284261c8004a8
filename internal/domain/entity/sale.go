package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Sale.
const (
	SaleStatusCompletada = "completada"
	SaleStatusPendiente  = "pendiente"
	SaleStatusCancelada  = "cancelada"
)

// Métodos de pago válidos para Sale.
const (
	PaymentEfectivo      = "efectivo"
	PaymentTransferencia = "transferencia"
	PaymentCredito       = "credito"
	PaymentQR            = "qr"
)

// ValidPaymentMethod informa si el método pertenece a la enumeración cerrada.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentEfectivo, PaymentTransferencia, PaymentCredito, PaymentQR:
		return true
	}
	return false
}

// Sale representa una venta: transacción vinculante que descuenta stock de
// cada producto al crearse. Invariante: Total = Subtotal + Tax - Discount.
type Sale struct {
	ID            string
	Date          time.Time
	ClientID      string
	SellerID      string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem línea de venta. Subtotal = Quantity * UnitPrice.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
