package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

var _ repository.ServiceDefRepository = (*ServiceDefRepo)(nil)

// ServiceDefRepo implementación de ServiceDefRepository.
type ServiceDefRepo struct {
	q Querier
}

// NewServiceDefRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceDefRepository(q Querier) *ServiceDefRepo {
	return &ServiceDefRepo{q: q}
}

// Create persiste un servicio del catálogo.
func (r *ServiceDefRepo) Create(svc *entity.ServiceDef) error {
	query := `
		INSERT INTO services (id, name, base_price, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		svc.ID, svc.Name, svc.BasePrice, nullIfEmpty(svc.Category), svc.Active, svc.CreatedAt, svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID (incluye inactivos, el caso de uso decide).
func (r *ServiceDefRepo) GetByID(id string) (*entity.ServiceDef, error) {
	query := `
		SELECT id, name, base_price, COALESCE(category, ''), active, created_at, updated_at
		FROM services WHERE id = $1`
	var s entity.ServiceDef
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.BasePrice, &s.Category, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// List lista servicios activos ordenados por nombre.
func (r *ServiceDefRepo) List(limit, offset int) ([]*entity.ServiceDef, error) {
	query := `
		SELECT id, name, base_price, COALESCE(category, ''), active, created_at, updated_at
		FROM services WHERE active ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceDef
	for rows.Next() {
		var s entity.ServiceDef
		if err := rows.Scan(&s.ID, &s.Name, &s.BasePrice, &s.Category, &s.Active,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza nombre, precio base y categoría.
func (r *ServiceDefRepo) Update(svc *entity.ServiceDef) error {
	query := `
		UPDATE services SET name = $2, base_price = $3, category = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		svc.ID, svc.Name, svc.BasePrice, nullIfEmpty(svc.Category), svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Deactivate borrado lógico: las facturas emitidas conservan su snapshot.
func (r *ServiceDefRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE services SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	return nil
}
