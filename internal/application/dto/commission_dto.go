package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionResponse salida de una comisión.
type CommissionResponse struct {
	ID         string          `json:"id"`
	SellerID   string          `json:"seller_id"`
	SaleID     string          `json:"sale_id"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Date       time.Time       `json:"date"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CommissionListResponse lista paginada de comisiones.
type CommissionListResponse struct {
	Items []CommissionResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
