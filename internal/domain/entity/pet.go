package entity

import "time"

// Pet representa una mascota registrada en la clínica.
type Pet struct {
	ID        string
	OwnerID   string
	Name      string
	Species   string
	Breed     string
	BirthDate *time.Time
	Active    bool // borrado lógico
	CreatedAt time.Time
	UpdatedAt time.Time
}
