package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vetclinic-pro/internal/domain"
	"github.com/tu-usuario/vetclinic-pro/internal/domain/billing"
)

func TestFormatNumber_SeisDigitosConCeros(t *testing.T) {
	assert.Equal(t, "FAC-000001", billing.FormatNumber("FAC", 1), "el primer consecutivo de un prefijo nuevo es 000001")
	assert.Equal(t, "FAC-000002", billing.FormatNumber("FAC", 2))
	assert.Equal(t, "VET-001234", billing.FormatNumber("VET", 1234))
	assert.Equal(t, "FAC-1000000", billing.FormatNumber("FAC", 1000000), "más de seis dígitos no se trunca")
}

func TestParseNumber_RoundTrip(t *testing.T) {
	prefix, seq, err := billing.ParseNumber(billing.FormatNumber("FAC", 42))
	require.NoError(t, err)
	assert.Equal(t, "FAC", prefix)
	assert.Equal(t, 42, seq)
}

func TestParseNumber_PrefijoConGuion(t *testing.T) {
	// El prefijo puede contener guiones; el consecutivo es lo que sigue al último.
	prefix, seq, err := billing.ParseNumber("VET-BOG-000007")
	require.NoError(t, err)
	assert.Equal(t, "VET-BOG", prefix)
	assert.Equal(t, 7, seq)
}

func TestParseNumber_MalFormados(t *testing.T) {
	for _, number := range []string{"", "FAC", "FAC-", "-000001", "FAC-abc", "FAC-000000"} {
		_, _, err := billing.ParseNumber(number)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "número %q debe ser rechazado", number)
	}
}
