package repository

import "github.com/tu-usuario/vetclinic-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del personal.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
