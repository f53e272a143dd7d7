package repository

import "github.com/tu-usuario/vetclinic-pro/internal/domain/entity"

// OwnerRepository define el puerto de persistencia para propietarios.
// El borrado es lógico (Active = false); nunca se elimina la fila.
type OwnerRepository interface {
	Create(owner *entity.Owner) error
	GetByID(id string) (*entity.Owner, error)
	List(limit, offset int) ([]*entity.Owner, error)
	Update(owner *entity.Owner) error
	Deactivate(id string) error
}
