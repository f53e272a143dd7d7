package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/vetclinic-pro/internal/application/dto"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	domainbilling "github.com/tu-usuario/vetclinic-pro/internal/domain/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/repository"
)

// maxNumberAttempts intentos de numeración ante colisión del consecutivo.
// Cada intento recalcula el número en una transacción nueva.
const maxNumberAttempts = 3

// InvoiceUseCase casos de uso de facturación: creación atómica, consultas,
// transición de estado y recibos.
type InvoiceUseCase struct {
	txRunner    InvoiceTxRunner
	invoiceRepo repository.InvoiceRepository
	ownerRepo   repository.OwnerRepository
	catalog     CatalogReader
	renderer    ReceiptRenderer
	pdf         ReceiptPDFGenerator
	biz         BusinessInfo
	prefix      string
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner InvoiceTxRunner,
	invoiceRepo repository.InvoiceRepository,
	ownerRepo repository.OwnerRepository,
	catalog CatalogReader,
	renderer ReceiptRenderer,
	pdf ReceiptPDFGenerator,
	biz BusinessInfo,
	prefix string,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		ownerRepo:   ownerRepo,
		catalog:     catalog,
		renderer:    renderer,
		pdf:         pdf,
		biz:         biz,
		prefix:      prefix,
	}
}

// CreateInvoice valida y resuelve las líneas contra el catálogo, calcula los
// totales y persiste cabecera + líneas en una sola transacción. El número de
// factura se asigna dentro de esa transacción; ante colisión del consecutivo
// se reintenta con un número recalculado hasta maxNumberAttempts veces.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id requerido", domain.ErrInvalidInput)
	}
	method := entity.PaymentMethod(strings.ToUpper(in.PaymentMethod))
	if !method.Valid() {
		return nil, fmt.Errorf("%w: medio de pago desconocido %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: invoice must contain at least one item", domain.ErrInvalidInput)
	}

	// Resolver cada línea contra el catálogo (fuera de la tx, solo lectura):
	// snapshot de la descripción y precio por defecto cuando no viene informado.
	inputs := make([]domainbilling.ItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		resolved, err := uc.resolveItem(item)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, resolved)
	}

	items, err := domainbilling.BuildLineItems(inputs)
	if err != nil {
		return nil, err
	}
	totals, err := domainbilling.ComputeTotals(items, in.Discount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		OwnerID:       in.OwnerID,
		Prefix:        uc.prefix,
		IssuedAt:      now,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		PaymentMethod: method,
		Status:        entity.InvoiceStatusPending,
		Notes:         in.Notes,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
			maxSeq, err := invoiceRepo.MaxSequence(uc.prefix)
			if err != nil {
				return err
			}
			inv.Sequence = maxSeq + 1
			inv.Number = domainbilling.FormatNumber(uc.prefix, inv.Sequence)
			if err := invoiceRepo.Create(inv); err != nil {
				return err
			}
			for _, item := range items {
				item.InvoiceID = inv.ID
				if err := invoiceRepo.CreateItem(item); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			return toInvoiceResponse(inv), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Colisión del número: otra creación ganó la carrera; recalcular y reintentar.
	}
	return nil, fmt.Errorf("%w: numeración agotada tras %d intentos", domain.ErrDuplicate, maxNumberAttempts)
}

// resolveItem completa descripción y precio desde el catálogo cuando aplica.
func (uc *InvoiceUseCase) resolveItem(in dto.CreateInvoiceItemRequest) (domainbilling.ItemInput, error) {
	resolved := domainbilling.ItemInput{
		Kind:        entity.LineItemKind(strings.ToUpper(in.Kind)),
		CatalogID:   in.CatalogID,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if in.CatalogID == "" {
		if strings.TrimSpace(in.Description) == "" {
			return domainbilling.ItemInput{}, fmt.Errorf("%w: descripción requerida para líneas sin referencia de catálogo", domain.ErrInvalidInput)
		}
		return resolved, nil
	}

	switch resolved.Kind {
	case entity.LineItemService:
		svc, err := uc.catalog.LookupService(in.CatalogID)
		if err != nil {
			return domainbilling.ItemInput{}, err
		}
		if svc == nil || !svc.Active {
			return domainbilling.ItemInput{}, fmt.Errorf("%w: servicio %s", domain.ErrNotFound, in.CatalogID)
		}
		if resolved.Description == "" {
			resolved.Description = svc.Name
		}
		if resolved.UnitPrice.IsZero() {
			resolved.UnitPrice = svc.BasePrice
		}
	case entity.LineItemProduct:
		p, err := uc.catalog.LookupProduct(in.CatalogID)
		if err != nil {
			return domainbilling.ItemInput{}, err
		}
		if p == nil || !p.Active {
			return domainbilling.ItemInput{}, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.CatalogID)
		}
		if resolved.Description == "" {
			resolved.Description = p.Name
		}
		if resolved.UnitPrice.IsZero() {
			resolved.UnitPrice = p.UnitPrice
		}
	default:
		return domainbilling.ItemInput{}, fmt.Errorf("%w: unknown line item kind %q", domain.ErrInvalidInput, in.Kind)
	}
	return resolved, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		OwnerID:       inv.OwnerID,
		Number:        inv.Number,
		IssuedAt:      inv.IssuedAt,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Discount:      inv.Discount,
		Total:         inv.Total,
		PaymentMethod: string(inv.PaymentMethod),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		Items:         make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Kind:        string(it.Kind),
			CatalogID:   it.CatalogID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}
