package dto

import "time"

// CreatePetRequest alta de mascota.
type CreatePetRequest struct {
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// UpdatePetRequest actualización de mascota.
type UpdatePetRequest struct {
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// PetResponse mascota en respuestas.
type PetResponse struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
