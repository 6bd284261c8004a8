package entity

import "time"

// Client representa un cliente (comprador) de la empresa.
type Client struct {
	ID        string
	Name      string
	Document  string // NIT o cédula
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
