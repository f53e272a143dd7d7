package billing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/billing"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/entity"
)

// TestValidateTransition_Matriz recorre la matriz completa de transiciones:
// solo PENDING→PAID y PENDING→VOID están permitidas.
func TestValidateTransition_Matriz(t *testing.T) {
	all := []entity.InvoiceStatus{
		entity.InvoiceStatusPending,
		entity.InvoiceStatusPaid,
		entity.InvoiceStatusVoid,
	}
	allowed := map[[2]entity.InvoiceStatus]bool{
		{entity.InvoiceStatusPending, entity.InvoiceStatusPaid}: true,
		{entity.InvoiceStatusPending, entity.InvoiceStatusVoid}: true,
	}

	for _, from := range all {
		for _, to := range all {
			err := billing.ValidateTransition(from, to)
			if allowed[[2]entity.InvoiceStatus{from, to}] {
				assert.NoError(t, err, "%s → %s debe estar permitida", from, to)
			} else {
				require.Error(t, err, "%s → %s debe ser rechazada", from, to)

				var invalid *billing.InvalidTransitionError
				require.True(t, errors.As(err, &invalid), "el error debe ser InvalidTransitionError")
				assert.Equal(t, from, invalid.From, "el error debe llevar el estado actual")
				assert.Equal(t, to, invalid.To, "el error debe llevar el estado intentado")
			}
		}
	}
}

func TestValidateTransition_PaidAVoidRechazada(t *testing.T) {
	err := billing.ValidateTransition(entity.InvoiceStatusPaid, entity.InvoiceStatusVoid)
	require.Error(t, err)

	var invalid *billing.InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Contains(t, invalid.Error(), "PAID")
	assert.Contains(t, invalid.Error(), "VOID")
}

func TestInvoiceStatus_Terminal(t *testing.T) {
	assert.False(t, entity.InvoiceStatusPending.Terminal())
	assert.True(t, entity.InvoiceStatusPaid.Terminal())
	assert.True(t, entity.InvoiceStatusVoid.Terminal())
}

func TestInvoiceStatus_Valid(t *testing.T) {
	assert.True(t, entity.InvoiceStatusPending.Valid())
	assert.False(t, entity.InvoiceStatus("DRAFT").Valid(), "estados fuera del conjunto cerrado no son válidos")
}
