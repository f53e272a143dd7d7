package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

var _ repository.ProductDefRepository = (*ProductDefRepo)(nil)

// ProductDefRepo implementación de ProductDefRepository.
type ProductDefRepo struct {
	q Querier
}

// NewProductDefRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductDefRepository(q Querier) *ProductDefRepo {
	return &ProductDefRepo{q: q}
}

// Create persiste un producto del catálogo.
func (r *ProductDefRepo) Create(p *entity.ProductDef) error {
	query := `
		INSERT INTO products (id, name, unit_price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.UnitPrice, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (incluye inactivos).
func (r *ProductDefRepo) GetByID(id string) (*entity.ProductDef, error) {
	query := `
		SELECT id, name, unit_price, active, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.ProductDef
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.UnitPrice, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos activos ordenados por nombre.
func (r *ProductDefRepo) List(limit, offset int) ([]*entity.ProductDef, error) {
	query := `
		SELECT id, name, unit_price, active, created_at, updated_at
		FROM products WHERE active ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductDef
	for rows.Next() {
		var p entity.ProductDef
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y precio unitario.
func (r *ProductDefRepo) Update(p *entity.ProductDef) error {
	query := `
		UPDATE products SET name = $2, unit_price = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.UnitPrice, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Deactivate borrado lógico.
func (r *ProductDefRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}
