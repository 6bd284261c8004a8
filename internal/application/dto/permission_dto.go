package dto

import "time"

// CreatePermissionRequest entrada para crear un permiso personalizado.
// Key y Module deben ser claves del catálogo de módulos; Key es inmutable
// después de la creación.
type CreatePermissionRequest struct {
	Key         string `json:"key" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Module      string `json:"module" validate:"required"`
	Description string `json:"description" validate:"max=500"`
	Category    string `json:"category" validate:"required,oneof=core sales inventory finance admin"`
}

// UpdatePermissionRequest entrada para actualizar un permiso (la clave no se renombra).
type UpdatePermissionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Category    *string `json:"category" validate:"omitempty,oneof=core sales inventory finance admin"`
}

// PermissionResponse salida de un permiso con su conteo derivado.
type PermissionResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Module      string    `json:"module"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsSystem    bool      `json:"is_system"`
	RolesCount  int       `json:"roles_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PermissionListResponse lista de permisos.
type PermissionListResponse struct {
	Items []PermissionResponse `json:"items"`
}
