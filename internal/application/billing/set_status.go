package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	domainbilling "github.com/tu-usuario/vetclinic-pro/internal/domain/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// SetStatus transiciona el estado de una factura. La máquina de estados valida
// la arista antes de escribir; la escritura exige además que el estado actual
// no haya cambiado desde la lectura (domain.ErrConflict si otra transición ganó).
func (uc *InvoiceUseCase) SetStatus(ctx context.Context, id, status string) error {
	to := entity.InvoiceStatus(strings.ToUpper(status))
	if !to.Valid() {
		return fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := domainbilling.ValidateTransition(inv.Status, to); err != nil {
		return err
	}
	return uc.invoiceRepo.UpdateStatus(id, inv.Status, to)
}
