package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado del ciclo de vida de una factura.
// Conjunto cerrado: PENDING (inicial), PAID y VOID (terminales).
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusVoid    InvoiceStatus = "VOID"
)

// Valid indica si el valor pertenece al conjunto cerrado de estados.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s InvoiceStatus) Terminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusVoid
}

// PaymentMethod medio de pago de la factura.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentMixed    PaymentMethod = "MIXED"
)

// Valid indica si el medio de pago pertenece al conjunto cerrado.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentMixed:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura de la clínica.
// Una factura se crea una sola vez con todas sus líneas; nunca se borra
// y solo muta a través de una transición de estado.
type Invoice struct {
	ID            string
	OwnerID       string
	Prefix        string
	Sequence      int    // consecutivo numérico dentro del prefijo
	Number        string // número formateado PREFIX-NNNNNN (clave visible, único)
	IssuedAt      time.Time
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	Status        InvoiceStatus
	Notes         string
	Items         []*LineItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
