package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// CommissionRepository define el puerto de persistencia para Commission.
type CommissionRepository interface {
	Create(c *entity.Commission) error
	GetByID(id string) (*entity.Commission, error)
	List(status string, limit, offset int) ([]*entity.Commission, error)
	Update(c *entity.Commission) error
}
