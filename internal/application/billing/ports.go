package billing

import (
	"context"

	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

// InvoiceTxRunner ejecuta fn con un InvoiceRepository atado a una transacción.
// Si fn retorna error se hace rollback completo (cabecera y líneas).
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// CatalogReader puerto de solo lectura hacia el catálogo de vendibles.
// La facturación consume el catálogo, no lo administra.
type CatalogReader interface {
	LookupService(id string) (*entity.ServiceDef, error)
	LookupProduct(id string) (*entity.ProductDef, error)
}

// BusinessInfo identidad del negocio impresa en los recibos.
type BusinessInfo struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
}

// ReceiptRenderer serializa una factura almacenada a texto plano de ancho fijo.
// Para la misma factura el resultado debe ser byte a byte idéntico.
type ReceiptRenderer interface {
	Render(biz BusinessInfo, inv *entity.Invoice, owner *entity.Owner) string
}

// ReceiptPDFGenerator representación gráfica (PDF) de una factura almacenada.
type ReceiptPDFGenerator interface {
	Generate(ctx context.Context, biz BusinessInfo, inv *entity.Invoice, owner *entity.Owner) ([]byte, error)
}
