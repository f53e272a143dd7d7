package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Las facturas nunca se borran: solo se insertan y transicionan de estado.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, owner_id, prefix, sequence, number, issued_at,
	subtotal, tax, discount, total,
	payment_method, status, COALESCE(notes, ''),
	created_at, updated_at`

// Create persiste la cabecera de la factura. El constraint único sobre number
// es la defensa final contra consecutivos duplicados entre transacciones
// concurrentes; la colisión se reporta como domain.ErrDuplicate para que el
// caso de uso reintente con un número recalculado.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, owner_id, prefix, sequence, number, issued_at,
		                      subtotal, tax, discount, total,
		                      payment_method, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.OwnerID, invoice.Prefix, invoice.Sequence, invoice.Number,
		invoice.IssuedAt, invoice.Subtotal, invoice.Tax, invoice.Discount, invoice.Total,
		string(invoice.PaymentMethod), string(invoice.Status), nullIfEmpty(invoice.Notes),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura.
func (r *InvoiceRepo) CreateItem(item *entity.LineItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoice_items (id, invoice_id, kind, catalog_id, description,
		                           quantity, unit_price, subtotal, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, string(item.Kind), nullIfEmpty(item.CatalogID),
		item.Description, item.Quantity, item.UnitPrice, item.Subtotal, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get invoice")
}

// GetByNumber obtiene la cabecera por su número formateado (clave visible).
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, number), "get invoice by number")
}

func (r *InvoiceRepo) scanOne(row pgx.Row, op string) (*entity.Invoice, error) {
	var inv entity.Invoice
	var method, status string
	err := row.Scan(
		&inv.ID, &inv.OwnerID, &inv.Prefix, &inv.Sequence, &inv.Number, &inv.IssuedAt,
		&inv.Subtotal, &inv.Tax, &inv.Discount, &inv.Total,
		&method, &status, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	inv.PaymentMethod = entity.PaymentMethod(method)
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}

// GetItemsByInvoiceID obtiene todas las líneas de una factura en su orden original.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.LineItem, error) {
	query := `
		SELECT id, invoice_id, kind, COALESCE(catalog_id, ''), description,
		       quantity, unit_price, subtotal, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.LineItem
	for rows.Next() {
		var it entity.LineItem
		var kind string
		if err := rows.Scan(&it.ID, &it.InvoiceID, &kind, &it.CatalogID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.Subtotal, &it.Position); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		it.Kind = entity.LineItemKind(kind)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByOwner lista las cabeceras de un propietario, más recientes primero.
func (r *InvoiceRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE owner_id = $1
		ORDER BY issued_at DESC, sequence DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var method, status string
		if err := rows.Scan(
			&inv.ID, &inv.OwnerID, &inv.Prefix, &inv.Sequence, &inv.Number, &inv.IssuedAt,
			&inv.Subtotal, &inv.Tax, &inv.Discount, &inv.Total,
			&method, &status, &inv.Notes,
			&inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.PaymentMethod = entity.PaymentMethod(method)
		inv.Status = entity.InvoiceStatus(status)
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// MaxSequence devuelve el mayor consecutivo emitido bajo el prefijo (0 si ninguno).
// Se invoca dentro de la misma transacción que inserta la cabecera.
func (r *InvoiceRepo) MaxSequence(prefix string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sequence), 0) FROM invoices WHERE prefix = $1`, prefix,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max invoice sequence: %w", err)
	}
	return max, nil
}

// UpdateStatus escribe el nuevo estado solo si el actual sigue siendo from.
// Cero filas afectadas significa que otra transición ganó la carrera (o que la
// factura no existe): se reporta domain.ErrConflict, nunca un no-op silencioso.
func (r *InvoiceRepo) UpdateStatus(id string, from, to entity.InvoiceStatus) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// CountByOwner cuenta las facturas de un propietario.
func (r *InvoiceRepo) CountByOwner(ownerID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM invoices WHERE owner_id = $1`, ownerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}
