package billing

import "context"

// RenderReceipt genera el recibo de texto plano de una factura almacenada.
// Solo usa valores persistidos: dos llamadas sobre la misma factura producen
// exactamente los mismos bytes.
func (uc *InvoiceUseCase) RenderReceipt(ctx context.Context, id string) (string, error) {
	inv, err := uc.loadInvoice(id)
	if err != nil {
		return "", err
	}
	owner, err := uc.ownerRepo.GetByID(inv.OwnerID)
	if err != nil {
		return "", err
	}
	return uc.renderer.Render(uc.biz, inv, owner), nil
}

// RenderReceiptPDF genera la representación gráfica (PDF) de la factura.
func (uc *InvoiceUseCase) RenderReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.loadInvoice(id)
	if err != nil {
		return nil, err
	}
	owner, err := uc.ownerRepo.GetByID(inv.OwnerID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(ctx, uc.biz, inv, owner)
}
