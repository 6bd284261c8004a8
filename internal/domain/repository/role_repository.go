package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role.
// Los lectores no deben depender de la identidad ni del orden del arreglo
// devuelto por List; el orden de despliegue lo fija el catálogo de módulos.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id string) error
	UsersCount(roleID string) (int, error)
}
