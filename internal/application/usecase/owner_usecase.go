package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/vetclinic-pro/internal/application/dto"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

// OwnerUseCase CRUD de propietarios. El borrado es siempre lógico.
type OwnerUseCase struct {
	ownerRepo repository.OwnerRepository
}

// NewOwnerUseCase construye el caso de uso.
func NewOwnerUseCase(ownerRepo repository.OwnerRepository) *OwnerUseCase {
	return &OwnerUseCase{ownerRepo: ownerRepo}
}

// Create registra un propietario nuevo.
func (uc *OwnerUseCase) Create(in dto.CreateOwnerRequest) (*dto.OwnerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	owner := &entity.Owner{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ownerRepo.Create(owner); err != nil {
		return nil, err
	}
	return toOwnerResponse(owner), nil
}

// GetByID obtiene un propietario (incluye inactivos: el histórico de facturas
// sigue referenciándolos).
func (uc *OwnerUseCase) GetByID(id string) (*dto.OwnerResponse, error) {
	owner, err := uc.ownerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	return toOwnerResponse(owner), nil
}

// List lista propietarios activos con paginación.
func (uc *OwnerUseCase) List(page dto.PageRequest) ([]*dto.OwnerResponse, error) {
	page.DefaultPage()
	owners, err := uc.ownerRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OwnerResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, toOwnerResponse(o))
	}
	return out, nil
}

// Update actualiza los datos de contacto del propietario.
func (uc *OwnerUseCase) Update(id string, in dto.UpdateOwnerRequest) (*dto.OwnerResponse, error) {
	owner, err := uc.ownerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	owner.Name = in.Name
	owner.TaxID = in.TaxID
	owner.Email = in.Email
	owner.Phone = in.Phone
	owner.Address = in.Address
	owner.UpdatedAt = time.Now()
	if err := uc.ownerRepo.Update(owner); err != nil {
		return nil, err
	}
	return toOwnerResponse(owner), nil
}

// Deactivate marca el propietario como inactivo (borrado lógico).
func (uc *OwnerUseCase) Deactivate(id string) error {
	owner, err := uc.ownerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if owner == nil {
		return domain.ErrNotFound
	}
	return uc.ownerRepo.Deactivate(id)
}

func toOwnerResponse(o *entity.Owner) *dto.OwnerResponse {
	return &dto.OwnerResponse{
		ID:        o.ID,
		Name:      o.Name,
		TaxID:     o.TaxID,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		Active:    o.Active,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
