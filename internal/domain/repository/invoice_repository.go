package repository

import "github.com/tu-usuario/vetclinic-pro/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Create y CreateItem se invocan siempre dentro de la misma transacción
// (ver postgres.TxRunner): nunca debe quedar cabecera sin líneas ni viceversa.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.LineItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetByNumber(number string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.LineItem, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Invoice, error)
	// MaxSequence devuelve el mayor consecutivo emitido bajo el prefijo (0 si ninguno).
	MaxSequence(prefix string) (int, error)
	// UpdateStatus escribe el nuevo estado solo si el actual coincide con from;
	// si otra transición ganó la carrera retorna domain.ErrConflict.
	UpdateStatus(id string, from, to entity.InvoiceStatus) error
	// CountByOwner cuenta facturas del propietario (paginación y verificación en tests).
	CountByOwner(ownerID string) (int, error)
}
