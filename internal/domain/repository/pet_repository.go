package repository

import "github.com/tu-usuario/vetclinic-pro/internal/domain/entity"

// PetRepository define el puerto de persistencia para mascotas.
// Borrado lógico, igual que Owner.
type PetRepository interface {
	Create(pet *entity.Pet) error
	GetByID(id string) (*entity.Pet, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Pet, error)
	Update(pet *entity.Pet) error
	Deactivate(id string) error
}
