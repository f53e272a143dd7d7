package repository

import "github.com/tu-usuario/vetclinic-pro/internal/domain/entity"

// ServiceDefRepository puerto de persistencia del catálogo de servicios.
type ServiceDefRepository interface {
	Create(svc *entity.ServiceDef) error
	GetByID(id string) (*entity.ServiceDef, error)
	List(limit, offset int) ([]*entity.ServiceDef, error)
	Update(svc *entity.ServiceDef) error
	Deactivate(id string) error
}

// ProductDefRepository puerto de persistencia del catálogo de productos.
type ProductDefRepository interface {
	Create(p *entity.ProductDef) error
	GetByID(id string) (*entity.ProductDef, error)
	List(limit, offset int) ([]*entity.ProductDef, error)
	Update(p *entity.ProductDef) error
	Deactivate(id string) error
}
