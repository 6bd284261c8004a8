package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema. Tiene exactamente un rol
// (restricción documentada del modelo: no hay multi-rol) y su conjunto
// efectivo de permisos es el del rol referenciado.
type User struct {
	ID            string
	Name          string
	Email         string // único
	PasswordHash  string // bcrypt, nunca se devuelve a clientes
	RoleID        string
	Status        string          // active, inactive
	CommissionPct decimal.Decimal // % de comisión como vendedor (0 = sin comisión)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
