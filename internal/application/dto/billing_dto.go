package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest una línea solicitada. Si CatalogID viene informado,
// la descripción y (cuando UnitPrice es cero) el precio se toman del catálogo.
type CreateInvoiceItemRequest struct {
	Kind        string          `json:"kind"` // SERVICE | PRODUCT
	CatalogID   string          `json:"catalog_id,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest petición de creación de factura.
type CreateInvoiceRequest struct {
	OwnerID       string                     `json:"owner_id"`
	Items         []CreateInvoiceItemRequest `json:"items"`
	PaymentMethod string                     `json:"payment_method"` // CASH | CARD | TRANSFER | MIXED
	Discount      decimal.Decimal            `json:"discount"`
	Notes         string                     `json:"notes,omitempty"`
}

// UpdateInvoiceStatusRequest petición de cambio de estado.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // PAID | VOID
}

// InvoiceItemResponse una línea en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	CatalogID   string          `json:"catalog_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura completa (cabecera + líneas).
type InvoiceResponse struct {
	ID            string                `json:"id"`
	OwnerID       string                `json:"owner_id"`
	Number        string                `json:"number"`
	IssuedAt      time.Time             `json:"issued_at"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Tax           decimal.Decimal       `json:"tax"`
	Discount      decimal.Decimal       `json:"discount"`
	Total         decimal.Decimal       `json:"total"`
	PaymentMethod string                `json:"payment_method"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
}
