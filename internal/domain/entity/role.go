package entity

import "time"

// Roles de sistema sembrados en el aprovisionamiento.
const (
	RoleAdministrador = "Administrador"
	RoleVendedor      = "Vendedor"
	RoleCajero        = "Cajero"
)

// Role agrupa claves de permiso bajo un nombre. El conjunto nunca es vacío.
// Un rol con IsSystem no se edita ni se elimina; un rol con usuarios
// asignados no se elimina. Cada usuario tiene exactamente un rol.
type Role struct {
	ID             string
	Name           string // único
	Description    string
	PermissionKeys []string // claves de Permission, sin orden significativo
	IsSystem       bool
	UsersCount     int // derivado: usuarios que referencian el rol
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPermission informa si el rol incluye la clave de permiso.
func (r *Role) HasPermission(key string) bool {
	for _, k := range r.PermissionKeys {
		if k == key {
			return true
		}
	}
	return false
}
