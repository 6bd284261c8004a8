package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (con líneas).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
