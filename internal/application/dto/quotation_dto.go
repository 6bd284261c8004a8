package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationItemRequest línea de cotización en la entrada. Si UnitPrice es
// cero se usa el precio de venta del producto.
type QuotationItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateQuotationRequest entrada para crear una cotización (estado pendiente).
type CreateQuotationRequest struct {
	ClientID   string                 `json:"client_id" validate:"required"`
	Items      []QuotationItemRequest `json:"items" validate:"required,min=1,dive"`
	Tax        decimal.Decimal        `json:"tax"`
	Discount   decimal.Decimal        `json:"discount"`
	ValidUntil time.Time              `json:"valid_until"`
}

// QuotationItemResponse línea de cotización en la salida.
type QuotationItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// QuotationResponse salida de una cotización.
type QuotationResponse struct {
	ID                string                  `json:"id"`
	Date              time.Time               `json:"date"`
	ClientID          string                  `json:"client_id"`
	SellerID          string                  `json:"seller_id"`
	Items             []QuotationItemResponse `json:"items"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	Tax               decimal.Decimal         `json:"tax"`
	Discount          decimal.Decimal         `json:"discount"`
	Total             decimal.Decimal         `json:"total"`
	ValidUntil        time.Time               `json:"valid_until"`
	Status            string                  `json:"status"`
	ConvertedToSaleID string                  `json:"converted_to_sale_id,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// QuotationListResponse lista paginada de cotizaciones.
type QuotationListResponse struct {
	Items []QuotationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ConvertQuotationResponse referencia a la venta creada por la conversión.
type ConvertQuotationResponse struct {
	QuotationID string `json:"quotation_id"`
	SaleID      string `json:"sale_id"`
}
