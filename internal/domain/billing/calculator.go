package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// TaxRate tarifa fija de IVA (19%). No configurable.
var TaxRate = decimal.New(19, -2)

// ItemInput una línea solicitada por el llamador, ya resuelta contra el
// catálogo (descripción y precio definitivos).
type ItemInput struct {
	Kind        entity.LineItemKind
	CatalogID   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Totals montos agregados de la factura.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// BuildLineItems valida cada línea solicitada y construye las líneas con su
// subtotal calculado. Toda validación ocurre aquí, antes de cualquier escritura.
func BuildLineItems(items []ItemInput) ([]*entity.LineItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: invoice must contain at least one item", domain.ErrInvalidInput)
	}
	built := make([]*entity.LineItem, 0, len(items))
	for i, in := range items {
		if !in.Kind.Valid() {
			return nil, fmt.Errorf("%w: unknown line item kind %q", domain.ErrInvalidInput, in.Kind)
		}
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", domain.ErrInvalidInput)
		}
		if !in.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("%w: unit price must be positive", domain.ErrInvalidInput)
		}
		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		built = append(built, &entity.LineItem{
			Kind:        in.Kind,
			CatalogID:   in.CatalogID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Subtotal:    subtotal,
			Position:    i + 1,
		})
	}
	return built, nil
}

// ComputeTotals agrega las líneas bajo las reglas aritméticas fijas:
// subtotal = Σ líneas, tax = round(subtotal × 0.19), total = subtotal + tax − descuento.
// El descuento por defecto es cero y el total nunca puede ser negativo.
func ComputeTotals(items []*entity.LineItem, discount decimal.Decimal) (Totals, error) {
	if discount.IsNegative() {
		return Totals{}, fmt.Errorf("%w: discount cannot be negative", domain.ErrInvalidInput)
	}
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
	}
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax).Sub(discount)
	if total.IsNegative() {
		return Totals{}, fmt.Errorf("%w: total cannot be negative", domain.ErrInvalidInput)
	}
	return Totals{Subtotal: subtotal, Tax: tax, Discount: discount, Total: total}, nil
}
