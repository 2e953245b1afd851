package entity

import "time"

// Customer representa un cliente. Email es único y es la clave del seed.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
