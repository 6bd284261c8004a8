package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// PermissionRepository define el puerto de persistencia para Permission.
// RolesCount alimenta el conteo derivado y el guard de eliminación.
type PermissionRepository interface {
	Create(p *entity.Permission) error
	GetByID(id string) (*entity.Permission, error)
	GetByKey(key string) (*entity.Permission, error)
	List() ([]*entity.Permission, error)
	Update(p *entity.Permission) error
	Delete(id string) error
	RolesCount(key string) (int, error)
}
