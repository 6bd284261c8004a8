package entity

import "time"

// Categorías válidas para Permission.
const (
	CategoryCore      = "core"
	CategorySales     = "sales"
	CategoryInventory = "inventory"
	CategoryFinance   = "finance"
	CategoryAdmin     = "admin"
)

// ValidCategory informa si la categoría pertenece a la enumeración cerrada.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCore, CategorySales, CategoryInventory, CategoryFinance, CategoryAdmin:
		return true
	}
	return false
}

// Permission representa un permiso sobre un módulo de la aplicación.
// Key es la clave estable que guardan los roles; es inmutable una vez creada
// (solo Name, Description y Category se pueden editar). IsSystem marca los
// permisos sembrados en el aprovisionamiento, que nunca se eliminan.
type Permission struct {
	ID          string
	Key         string // clave única y estable, p.ej. "sales"
	Name        string
	Module      string // clave del módulo/página que habilita
	Description string
	Category    string // core, sales, inventory, finance, admin
	IsSystem    bool
	RolesCount  int // derivado: cantidad de roles que lo referencian
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
