package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo implementación de PetRepository (usable con pool o tx).
type PetRepo struct {
	q Querier
}

// NewPetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPetRepository(q Querier) *PetRepo {
	return &PetRepo{q: q}
}

// Create persiste una mascota nueva.
func (r *PetRepo) Create(pet *entity.Pet) error {
	query := `
		INSERT INTO pets (id, owner_id, name, species, breed, birth_date, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		pet.ID, pet.OwnerID, pet.Name, pet.Species, nullIfEmpty(pet.Breed), pet.BirthDate,
		pet.Active, pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

// GetByID obtiene una mascota por ID (incluye inactivas).
func (r *PetRepo) GetByID(id string) (*entity.Pet, error) {
	query := `
		SELECT id, owner_id, name, species, COALESCE(breed, ''), birth_date, active, created_at, updated_at
		FROM pets WHERE id = $1`
	var p entity.Pet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed, &p.BirthDate, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return &p, nil
}

// ListByOwner lista las mascotas activas de un propietario.
func (r *PetRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Pet, error) {
	query := `
		SELECT id, owner_id, name, species, COALESCE(breed, ''), birth_date, active, created_at, updated_at
		FROM pets WHERE owner_id = $1 AND active ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pet
	for rows.Next() {
		var p entity.Pet
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed, &p.BirthDate,
			&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos de la mascota.
func (r *PetRepo) Update(pet *entity.Pet) error {
	query := `
		UPDATE pets SET name = $2, species = $3, breed = $4, birth_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pet.ID, pet.Name, pet.Species, nullIfEmpty(pet.Breed), pet.BirthDate, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	return nil
}

// Deactivate borrado lógico.
func (r *PetRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pets SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate pet: %w", err)
	}
	return nil
}
