package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implementación de OwnerRepository (usable con pool o tx).
type OwnerRepo struct {
	q Querier
}

// NewOwnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Create persiste un propietario nuevo.
func (r *OwnerRepo) Create(owner *entity.Owner) error {
	query := `
		INSERT INTO owners (id, name, tax_id, email, phone, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		owner.ID, owner.Name, owner.TaxID, owner.Email, owner.Phone, owner.Address,
		owner.Active, owner.CreatedAt, owner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

// GetByID obtiene un propietario por ID (incluye inactivos).
func (r *OwnerRepo) GetByID(id string) (*entity.Owner, error) {
	query := `
		SELECT id, name, tax_id, email, phone, address, active, created_at, updated_at
		FROM owners WHERE id = $1`
	var o entity.Owner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.TaxID, &o.Email, &o.Phone, &o.Address, &o.Active, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}
	return &o, nil
}

// List lista propietarios activos con paginación.
func (r *OwnerRepo) List(limit, offset int) ([]*entity.Owner, error) {
	query := `
		SELECT id, name, tax_id, email, phone, address, active, created_at, updated_at
		FROM owners WHERE active ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Owner
	for rows.Next() {
		var o entity.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.TaxID, &o.Email, &o.Phone, &o.Address,
			&o.Active, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto del propietario.
func (r *OwnerRepo) Update(owner *entity.Owner) error {
	query := `
		UPDATE owners SET name = $2, tax_id = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		owner.ID, owner.Name, owner.TaxID, owner.Email, owner.Phone, owner.Address, owner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	return nil
}

// Deactivate borrado lógico: la fila permanece para el histórico de facturas.
func (r *OwnerRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE owners SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate owner: %w", err)
	}
	return nil
}
