package dto

import "time"

// CreateRoleRequest entrada para crear un rol. El conjunto de permisos no
// puede ser vacío.
type CreateRoleRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Description   string   `json:"description" validate:"max=500"`
	PermissionIDs []string `json:"permissionIds" validate:"required,min=1,dive,required"`
}

// UpdateRoleRequest entrada para actualizar un rol (reemplaza el conjunto).
type UpdateRoleRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Description   string   `json:"description" validate:"max=500"`
	PermissionIDs []string `json:"permissionIds" validate:"required,min=1,dive,required"`
}

// RoleResponse salida de un rol con sus conteos derivados.
type RoleResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PermissionIDs []string  `json:"permissionIds"`
	IsSystem      bool      `json:"is_system"`
	UsersCount    int       `json:"users_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RoleListResponse lista de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
}
