package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Email         string          `json:"email" validate:"required,email"`
	Password      string          `json:"password" validate:"required,min=8"`
	RoleID        string          `json:"role_id" validate:"required"`
	CommissionPct decimal.Decimal `json:"commission_pct"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Email         *string          `json:"email" validate:"omitempty,email"`
	RoleID        *string          `json:"role_id"`
	Status        *string          `json:"status" validate:"omitempty,oneof=active inactive"`
	CommissionPct *decimal.Decimal `json:"commission_pct"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	RoleID        string          `json:"role_id"`
	Status        string          `json:"status"`
	CommissionPct decimal.Decimal `json:"commission_pct"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   string `json:"role_id" validate:"required"`
}
