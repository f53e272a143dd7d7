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

// PetUseCase CRUD de mascotas.
type PetUseCase struct {
	petRepo   repository.PetRepository
	ownerRepo repository.OwnerRepository
}

// NewPetUseCase construye el caso de uso.
func NewPetUseCase(petRepo repository.PetRepository, ownerRepo repository.OwnerRepository) *PetUseCase {
	return &PetUseCase{petRepo: petRepo, ownerRepo: ownerRepo}
}

// Create registra una mascota; el propietario debe existir y estar activo.
func (uc *PetUseCase) Create(in dto.CreatePetRequest) (*dto.PetResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return nil, fmt.Errorf("%w: nombre y especie requeridos", domain.ErrInvalidInput)
	}
	owner, err := uc.ownerRepo.GetByID(in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.Active {
		return nil, fmt.Errorf("%w: propietario %s", domain.ErrNotFound, in.OwnerID)
	}
	now := time.Now()
	pet := &entity.Pet{
		ID:        uuid.New().String(),
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		BirthDate: in.BirthDate,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.petRepo.Create(pet); err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

// GetByID obtiene una mascota por ID.
func (uc *PetUseCase) GetByID(id string) (*dto.PetResponse, error) {
	pet, err := uc.petRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	return toPetResponse(pet), nil
}

// ListByOwner lista las mascotas activas de un propietario.
func (uc *PetUseCase) ListByOwner(ownerID string, page dto.PageRequest) ([]*dto.PetResponse, error) {
	page.DefaultPage()
	pets, err := uc.petRepo.ListByOwner(ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PetResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, toPetResponse(p))
	}
	return out, nil
}

// Update actualiza los datos de la mascota.
func (uc *PetUseCase) Update(id string, in dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := uc.petRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return nil, fmt.Errorf("%w: nombre y especie requeridos", domain.ErrInvalidInput)
	}
	pet.Name = in.Name
	pet.Species = in.Species
	pet.Breed = in.Breed
	pet.BirthDate = in.BirthDate
	pet.UpdatedAt = time.Now()
	if err := uc.petRepo.Update(pet); err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

// Deactivate marca la mascota como inactiva (borrado lógico).
func (uc *PetUseCase) Deactivate(id string) error {
	pet, err := uc.petRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pet == nil {
		return domain.ErrNotFound
	}
	return uc.petRepo.Deactivate(id)
}

func toPetResponse(p *entity.Pet) *dto.PetResponse {
	return &dto.PetResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: p.BirthDate,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
