package billing

import (
	"context"

	"github.com/tu-usuario/vetclinic-pro/internal/application/dto"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	domainbilling "github.com/tu-usuario/vetclinic-pro/internal/domain/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// GetInvoice obtiene una factura por ID con sus líneas.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadInvoice(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetInvoiceByNumber busca una factura por su número completo, la clave que
// aparece impresa en el recibo (ej. FAC-000123), y la devuelve con sus líneas.
func (uc *InvoiceUseCase) GetInvoiceByNumber(ctx context.Context, number string) (*dto.InvoiceResponse, error) {
	if _, _, err := domainbilling.ParseNumber(number); err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return toInvoiceResponse(inv), nil
}

// ListByOwner lista las facturas de un propietario, cada una con sus líneas.
func (uc *InvoiceUseCase) ListByOwner(ctx context.Context, ownerID string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.ListByOwner(ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items, err := uc.invoiceRepo.GetItemsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// loadInvoice carga cabecera + líneas o domain.ErrNotFound.
func (uc *InvoiceUseCase) loadInvoice(id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}
