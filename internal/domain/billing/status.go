package billing

import (
	"fmt"

	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// Máquina de estados de la factura. Únicas aristas permitidas:
//
//	PENDING → PAID
//	PENDING → VOID
//
// PAID y VOID son terminales; ningún estado vuelve a PENDING y no hay
// auto-transiciones.

// InvalidTransitionError transición de estado rechazada; lleva el estado
// actual y el intentado.
type InvalidTransitionError struct {
	From entity.InvoiceStatus
	To   entity.InvoiceStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transición de estado inválida: %s → %s", e.From, e.To)
}

// CanTransition indica si la arista from→to está permitida.
func CanTransition(from, to entity.InvoiceStatus) bool {
	if from != entity.InvoiceStatusPending {
		return false
	}
	return to == entity.InvoiceStatusPaid || to == entity.InvoiceStatusVoid
}

// ValidateTransition retorna InvalidTransitionError si la arista no está permitida.
func ValidateTransition(from, to entity.InvoiceStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}
