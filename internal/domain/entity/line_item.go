package entity

import "github.com/shopspring/decimal"

// LineItemKind tipo de línea facturada.
type LineItemKind string

const (
	LineItemService LineItemKind = "SERVICE"
	LineItemProduct LineItemKind = "PRODUCT"
)

// Valid indica si el tipo pertenece al conjunto cerrado.
func (k LineItemKind) Valid() bool {
	return k == LineItemService || k == LineItemProduct
}

// LineItem una línea de factura (producto o servicio). Pertenece a exactamente
// una factura y es inmutable una vez persistida la factura.
type LineItem struct {
	ID          string
	InvoiceID   string
	Kind        LineItemKind
	CatalogID   string // referencia al catálogo cuando aplica (vacío para líneas libres)
	Description string // snapshot al momento de facturar, independiente del catálogo
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // Quantity × UnitPrice
	Position    int             // orden dentro de la factura
}
