package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// HasActivity informa si el usuario tiene ventas, compras o gastos
// asociados (guard referencial de eliminación).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	HasActivity(userID string) (bool, error)
}
