package entity

import "time"

// Owner representa el propietario de una o más mascotas (cliente de facturación).
type Owner struct {
	ID        string
	Name      string
	TaxID     string // NIT o Cédula (Colombia)
	Email     string
	Phone     string
	Address   string
	Active    bool // borrado lógico
	CreatedAt time.Time
	UpdatedAt time.Time
}
