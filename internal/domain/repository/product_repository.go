package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-pyme/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// GetForUpdate bloquea la fila dentro de la transacción en curso; solo la
// creación de ventas y la recepción de compras usan UpdateStock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock decimal.Decimal) error
	Delete(id string) error
	HasTransactions(productID string) (bool, error)
}
