package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para Purchase.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	List(limit, offset int) ([]*entity.Purchase, error)
}
